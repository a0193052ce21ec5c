// Package input merges the barcode scanner and keyboard line sources into
// one ordered queue for the command loop.
//
// Each source runs as an independent producer goroutine pushing trimmed
// non-empty lines into a shared FIFO channel; the command loop is the sole
// consumer, so cross-source ordering is first arrived, first served. Serial
// read faults are retried at the producer and never surface to the
// consumer. Producers are daemonized: they hold no state that needs
// cleanup beyond the device handle released at process exit.
//
// When no scanner is present at startup, a udev hotplug watcher can attach
// the serial producer as soon as the configured device appears.
package input
