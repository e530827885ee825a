package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantMsg    string
		wantCat    Category
		wantStatus int
	}{
		{
			name:       "category not found",
			code:       "E200",
			wantMsg:    "Category not found",
			wantCat:    CategoryCatalog,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "provider unavailable",
			code:       "E210",
			wantMsg:    "Catalog unavailable",
			wantCat:    CategoryProvider,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "config error defaults to 500",
			code:       "E120",
			wantMsg:    "Invalid configuration file",
			wantCat:    CategoryConfig,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unknown error code",
			code:       "E999",
			wantMsg:    "Unknown error",
			wantCat:    "",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
			if err.HTTPStatus() != tt.wantStatus {
				t.Errorf("HTTPStatus() = %d, want %d", err.HTTPStatus(), tt.wantStatus)
			}
		})
	}
}

func TestGalleryError_Error(t *testing.T) {
	if got := New("E201").Error(); got != "E201: Component not found" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := New("E210").Wrap(fmt.Errorf("dial tcp: refused"))
	if got := wrapped.Error(); got != "E210: Catalog unavailable: dial tcp: refused" {
		t.Errorf("Error() = %q", got)
	}

	plain := &GalleryError{Message: "test error"}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "test error")
	}
}

func TestGalleryError_IsAndCode(t *testing.T) {
	err := fmt.Errorf("loading page: %w", New("E200").WithDetail("forms"))

	if !stderrors.Is(err, New("E200")) {
		t.Error("errors.Is should match by code")
	}
	if stderrors.Is(err, New("E201")) {
		t.Error("errors.Is must not match a different code")
	}
	if Code(err) != "E200" {
		t.Errorf("Code() = %q, want E200", Code(err))
	}
	if Code(fmt.Errorf("plain")) != "" {
		t.Error("Code() of a plain error should be empty")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E210") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	ge := New("E200")
	if FromError(fmt.Errorf("ctx: %w", ge), "E210") != ge {
		t.Error("FromError should unwrap to the existing GalleryError")
	}

	std := fmt.Errorf("boom")
	result := FromError(std, "E210")
	if result.Wrapped != std || result.Code != "E210" {
		t.Errorf("FromError(std) = %+v", result)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("E200").
		WithDetail(`No category with slug "forms"`).
		WithSuggestion("Check the category list").
		Format()

	for _, want := range []string{
		"ERROR E200: Category not found",
		`No category with slug "forms"`,
		"Hint: Check the category list",
		"Learn more: https://gallery.vango.dev/docs/errors/E200",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatJSONOmitsCause(t *testing.T) {
	out := New("E210").Wrap(fmt.Errorf("password=hunter2")).FormatJSON()
	if strings.Contains(out, "hunter2") {
		t.Errorf("FormatJSON leaked the cause: %s", out)
	}
	if !strings.Contains(out, `"code":"E210"`) {
		t.Errorf("FormatJSON() = %s", out)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText(strings.Repeat("word ", 30), 20)
	for _, l := range lines {
		if len(l) > 20 {
			t.Errorf("line %q exceeds width", l)
		}
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should produce no lines")
	}
}

func TestAllCodesHaveDocs(t *testing.T) {
	for _, code := range GetAllCodes() {
		tmpl, _ := GetTemplate(code)
		if tmpl.DocURL != docBase+code {
			t.Errorf("%s DocURL = %q", code, tmpl.DocURL)
		}
		if tmpl.Message == "" {
			t.Errorf("%s has no message", code)
		}
	}
}
