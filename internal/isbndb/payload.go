package isbndb

import "libris/internal/library"

// apiResponse is the ISBNdb v2 envelope: either an error string or a data
// list. Both book and price endpoints share it.
type apiResponse[T any] struct {
	Error string `json:"error"`
	Data  []T    `json:"data"`
}

type authorPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// bookPayload matches one entry of the book endpoints' data list.
type bookPayload struct {
	AuthorData       []authorPayload `json:"author_data"`
	AwardsText       string          `json:"awards_text"`
	BookID           string          `json:"book_id"`
	DeweyDecimal     string          `json:"dewey_decimal"`
	DeweyNormal      string          `json:"dewey_normal"`
	EditionInfo      string          `json:"edition_info"`
	ISBN10           string          `json:"isbn10"`
	ISBN13           string          `json:"isbn13"`
	Language         string          `json:"language"`
	LCCNumber        string          `json:"lcc_number"`
	MARCEncLevel     string          `json:"marc_enc_level"`
	Notes            string          `json:"notes"`
	PhysicalDescText string          `json:"physical_description_text"`
	PublisherID      string          `json:"publisher_id"`
	PublisherName    string          `json:"publisher_name"`
	PublisherText    string          `json:"publisher_text"`
	SubjectIDs       []string        `json:"subject_ids"`
	Summary          string          `json:"summary"`
	Title            string          `json:"title"`
	TitleLatin       string          `json:"title_latin"`
	TitleLong        string          `json:"title_long"`
	URLsText         string          `json:"urls_text"`
}

// pricePayload matches one entry of the prices endpoint's data list.
type pricePayload struct {
	CurrencyCode  string  `json:"currency_code"`
	InStock       int     `json:"in_stock"`
	IsHistoric    int     `json:"is_historic"`
	IsNew         int     `json:"is_new"`
	Price         float64 `json:"price"`
	PriceTimeUnix int64   `json:"price_time_unix"`
	StoreID       string  `json:"store_id"`
	StoreTitle    string  `json:"store_title"`
	StoreURL      string  `json:"store_url"`
}

// bookFromPayload flattens an API book record into the catalog shape. Only
// the first author_data entry is used.
func bookFromPayload(payload bookPayload) *library.Book {
	book := &library.Book{
		AwardsText:       payload.AwardsText,
		BookID:           payload.BookID,
		DeweyDecimal:     payload.DeweyDecimal,
		DeweyNormal:      payload.DeweyNormal,
		EditionInfo:      payload.EditionInfo,
		ISBN10:           payload.ISBN10,
		ISBN13:           payload.ISBN13,
		Language:         payload.Language,
		LCCNumber:        payload.LCCNumber,
		MARCEncLevel:     payload.MARCEncLevel,
		Notes:            payload.Notes,
		PhysicalDescText: payload.PhysicalDescText,
		PublisherID:      payload.PublisherID,
		PublisherName:    payload.PublisherName,
		PublisherText:    payload.PublisherText,
		SubjectIDs:       payload.SubjectIDs,
		Summary:          payload.Summary,
		Title:            payload.Title,
		TitleLatin:       payload.TitleLatin,
		TitleLong:        payload.TitleLong,
		URLsText:         payload.URLsText,
	}
	if len(payload.AuthorData) > 0 {
		book.AuthorID = payload.AuthorData[0].ID
		book.AuthorName = payload.AuthorData[0].Name
	}
	return book
}

func quoteFromPayload(payload pricePayload) library.PriceQuote {
	return library.PriceQuote{
		CurrencyCode:  payload.CurrencyCode,
		InStock:       payload.InStock != 0,
		IsHistoric:    payload.IsHistoric != 0,
		IsNew:         payload.IsNew != 0,
		Price:         payload.Price,
		PriceTimeUnix: payload.PriceTimeUnix,
		StoreID:       payload.StoreID,
		StoreTitle:    payload.StoreTitle,
		StoreURL:      payload.StoreURL,
	}
}
