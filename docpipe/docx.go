package docpipe

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// maxXMLDepth bounds element nesting in word/document.xml. Real Word
// output stays far below this; deeply nested input is an XML bomb.
const maxXMLDepth = 256

// extractDocx parses a .docx file by reading word/document.xml from the
// ZIP archive. Each w:p paragraph becomes one output line, which keeps
// day headers and timed entries on separate lines for the parser.
func extractDocx(path string) ([]string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var lines []string
	var currentText strings.Builder
	var inParagraph bool
	depth := 0

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth > maxXMLDepth {
				return nil, fmt.Errorf("document.xml exceeds max nesting depth %d", maxXMLDepth)
			}
			switch t.Name.Local {
			case "p":
				inParagraph = true
				currentText.Reset()
			case "tab":
				if inParagraph {
					currentText.WriteByte(' ')
				}
			case "br":
				if inParagraph {
					currentText.WriteByte(' ')
				}
			}

		case xml.CharData:
			if inParagraph {
				currentText.Write(t)
			}

		case xml.EndElement:
			depth--
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				if text := strings.TrimSpace(currentText.String()); text != "" {
					lines = append(lines, text)
				}
			}
		}
	}

	return lines, nil
}
