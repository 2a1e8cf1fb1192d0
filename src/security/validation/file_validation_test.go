package validation

import (
	"bytes"
	"os"
	"testing"

	"github.com/username/finsight/backend/src/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func TestValidateClientContentType(t *testing.T) {
	tests := []struct {
		contentType string
		wantErr     bool
	}{
		{"application/pdf", false},
		{"text/csv", false},
		{"text/csv; charset=utf-8", false},
		{"text/plain", false},
		{"application/vnd.ms-excel", false},
		{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", true},
		{"image/png", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			err := ValidateClientContentType(tt.contentType)
			if (err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestDetectStatementKind(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    StatementKind
		wantErr bool
	}{
		{"pdf magic", []byte("%PDF-1.7 rest of file"), KindPDF, false},
		{"csv text", []byte("Date,Description,Amount\n2025-01-05,STORE,10.00\n"), KindCSV, false},
		{"binary junk", append([]byte{0x00, 0x01, 0x02}, []byte("not a pdf")...), "", true},
		{"empty file", nil, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := DetectStatementKind(bytes.NewReader(tt.content))
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != tt.want {
				t.Errorf("got %s, want %s", kind, tt.want)
			}
		})
	}
}

func TestDetectStatementKindResetsReader(t *testing.T) {
	content := []byte("%PDF-1.7 body")
	reader := bytes.NewReader(content)
	if _, err := DetectStatementKind(reader); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, len(content))
	n, _ := reader.Read(buf)
	if n != len(content) {
		t.Errorf("reader not reset: read %d of %d bytes", n, len(content))
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "COMPRA MERCADO 123", "COMPRA MERCADO 123"},
		{"strips markup", "<b>bold</b> text", "bold text"},
		{"strips script entirely", "<script>alert(1)</script>safe", "safe"},
		{"trims whitespace", "  padded  ", "padded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
