package core_test

import (
	"testing"
	"time"

	"quitacao-report/internal/core"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.5", "R$1.234,50"},
		{"0", "R$0,00"},
		{"0.5", "R$0,50"},
		{"999.99", "R$999,99"},
		{"1000", "R$1.000,00"},
		{"1000000", "R$1.000.000,00"},
		{"123456789.01", "R$123.456.789,01"},
		{"-1234.5", "R$-1.234,50"},
		{"-0.01", "R$-0,01"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			if err != nil {
				t.Fatalf("bad input: %v", err)
			}
			if got := core.FormatBRL(d); got != tt.want {
				t.Errorf("FormatBRL(%s): want %q, got %q", tt.in, tt.want, got)
			}
		})
	}
}

func TestFormatBRLString_MalformedPassesThrough(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.5", "R$1.234,50"},
		{" 10 ", "R$10,00"},
		{"not-a-number", "not-a-number"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := core.FormatBRLString(tt.in); got != tt.want {
			t.Errorf("FormatBRLString(%q): want %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestFormatDocument(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"cpf", "12345678901", "123.456.789-01"},
		{"cnpj", "12345678901234", "12.345.678/9012-34"},
		{"short passes through", "12345", "12345"},
		{"empty passes through", "", ""},
		{"twelve digits passes through", "123456789012", "123456789012"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.FormatDocument(tt.in); got != tt.want {
				t.Errorf("FormatDocument(%q): want %q, got %q", tt.in, tt.want, got)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)
	if got := core.FormatDate(&d); got != "31/12/2021" {
		t.Errorf("FormatDate: want 31/12/2021, got %s", got)
	}
	if got := core.FormatDate(nil); got != "" {
		t.Errorf("FormatDate(nil): want empty, got %q", got)
	}
	if got := core.FormatReceivedDate(d); got != "2021-12-31" {
		t.Errorf("FormatReceivedDate: want 2021-12-31, got %s", got)
	}
}
