package extract

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// literalStringRe matches PDF literal strings: (text).
var literalStringRe = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// pdfText extracts the text of every page by walking pdfcpu's page content
// streams and collecting the strings shown by the Tj/TJ/' operators. That
// covers the common text-based PDF; image-only documents yield an error.
func pdfText(data []byte) (string, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		page := pageText(ctx, pageNr)
		if page == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(page)
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in pdf")
	}
	return text, nil
}

func pageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	stream, err := io.ReadAll(r)
	if err != nil || len(stream) == 0 {
		return ""
	}
	return textFromContentStream(stream)
}

// textFromContentStream scans content-stream operators for shown text.
func textFromContentStream(stream []byte) string {
	var sb strings.Builder

	for _, raw := range bytes.Split(stream, []byte{'\n'}) {
		line := bytes.TrimSpace(raw)
		if len(line) == 0 {
			continue
		}

		showsText := bytes.HasSuffix(line, []byte("Tj")) ||
			bytes.HasSuffix(line, []byte("TJ")) ||
			(bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")))
		if showsText {
			for _, m := range literalStringRe.FindAllSubmatch(line, -1) {
				if s := decodeLiteral(m[1]); s != "" {
					sb.WriteString(s)
				}
			}
			sb.WriteByte(' ')
			continue
		}

		// Line-positioning operators imply a break between text runs.
		if bytes.Equal(line, []byte("T*")) || bytes.HasSuffix(line, []byte("Td")) || bytes.HasSuffix(line, []byte("TD")) {
			sb.WriteByte('\n')
		}
	}

	return strings.TrimSpace(sb.String())
}

// decodeLiteral resolves the escape sequences allowed in PDF literal strings.
func decodeLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 == len(raw) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '(', ')', '\\':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}
