// Package extract converts uploaded resume files (PDF, DOCX or plain
// text) into plain text. Malformed documents degrade to an empty string
// instead of an error: the validation gate downstream rejects those
// uploads with a user-facing message anyway.
package extract

import (
	"bytes"
	"encoding/xml"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Text extracts plain text from an uploaded file, dispatching on the
// file-name suffix (case-insensitive). Unknown suffixes are decoded as
// UTF-8 with invalid sequences dropped. The input bytes are only read,
// never consumed, so callers can persist them afterwards.
func Text(fileName string, data []byte) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	default:
		return strings.ToValidUTF8(string(data), "")
	}
}

// pdfText concatenates the text of every page, each non-empty page
// followed by a newline. Pages without extractable text contribute
// nothing.
func pdfText(data []byte) (out string) {
	// The pdf package panics on some malformed files; treat that the
	// same as a parse error.
	defer func() {
		if r := recover(); r != nil {
			out = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

// docxText joins the text of every paragraph in document order with
// newlines.
func docxText(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	defer doc.Close()

	return paragraphText(doc.Editable().GetContent())
}

// paragraphText walks the word-processing XML, collecting the character
// data of each <w:t> run and emitting a newline at every paragraph end.
func paragraphText(content string) string {
	dec := xml.NewDecoder(strings.NewReader(content))

	var paragraphs []string
	var current strings.Builder
	inRun := false

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inRun {
				current.Write(t)
			}
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}
	return strings.Join(paragraphs, "\n")
}
