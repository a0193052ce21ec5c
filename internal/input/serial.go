package input

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// SerialSource reads newline-terminated barcodes from a scanner's serial
// tty. The device is configured raw 8N1 at the requested speed; framing
// beyond line termination is the scanner's concern.
type SerialSource struct {
	path   string
	file   *os.File
	reader *bufio.Reader
}

var baudFlags = map[int]uint32{
	1200:   unix.B1200,
	2400:   unix.B2400,
	4800:   unix.B4800,
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
}

// OpenSerial opens and configures the scanner device.
func OpenSerial(path string, speed int) (*SerialSource, error) {
	flag, ok := baudFlags[speed]
	if !ok {
		return nil, fmt.Errorf("unsupported serial speed %d", speed)
	}

	file, err := os.OpenFile(path, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("open serial device: %w", err)
	}

	if err := configureTTY(int(file.Fd()), flag); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("configure serial device: %w", err)
	}

	return &SerialSource{
		path:   path,
		file:   file,
		reader: bufio.NewReader(file),
	}, nil
}

// configureTTY puts the line in raw 8N1 mode at the given speed.
func configureTTY(fd int, speed uint32) error {
	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}

	// CR-terminated scans are folded to NL so line reads terminate on
	// scanners that never send a newline.
	tio.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.IXON
	tio.Iflag |= unix.ICRNL
	tio.Oflag &^= unix.OPOST
	tio.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	tio.Cflag &^= unix.CSIZE | unix.PARENB | unix.CSTOPB | unix.CBAUD
	tio.Cflag |= unix.CS8 | unix.CLOCAL | unix.CREAD | speed
	tio.Ispeed = speed
	tio.Ospeed = speed
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, tio); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

// Name identifies the source in logs.
func (s *SerialSource) Name() string {
	return "scanner"
}

// ReadLine blocks for the next scanned barcode.
func (s *SerialSource) ReadLine() (string, error) {
	return s.reader.ReadString('\n')
}

// Close releases the device handle.
func (s *SerialSource) Close() error {
	return s.file.Close()
}
