// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package validation

import (
	"strings"
	"testing"
)

type rateMovieRequest struct {
	MovieID int     `validate:"required,gt=0"`
	Score   float64 `validate:"required,gte=1,lte=10"`
}

type postMessageRequest struct {
	Role    string `validate:"required,oneof=user assistant"`
	Content string `validate:"required,min=1,max=4000"`
}

func TestValidateStructPasses(t *testing.T) {
	t.Parallel()

	req := rateMovieRequest{MovieID: 42, Score: 8.5}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestValidateStructSingleError(t *testing.T) {
	t.Parallel()

	req := rateMovieRequest{MovieID: 42, Score: 11}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	errs := err.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs[0].Field() != "Score" || errs[0].Tag() != "lte" {
		t.Errorf("unexpected error: field=%s tag=%s", errs[0].Field(), errs[0].Tag())
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR code, got %s", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "less than or equal to 10") {
		t.Errorf("unexpected message: %s", apiErr.Message)
	}
	if apiErr.Details["field"] != "Score" {
		t.Errorf("expected field detail, got %v", apiErr.Details)
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	t.Parallel()

	req := postMessageRequest{Role: "system", Content: ""}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR code, got %s", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "Role") || !strings.Contains(apiErr.Message, "Content") {
		t.Errorf("expected both fields in message, got %s", apiErr.Message)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Errorf("expected fields detail, got %v", apiErr.Details)
	}
}

func TestTranslatedMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  interface{}
		want string
	}{
		{
			name: "oneof",
			req:  &postMessageRequest{Role: "robot", Content: "hi"},
			want: "Role must be one of: user assistant",
		},
		{
			name: "max string length",
			req:  &postMessageRequest{Role: "user", Content: strings.Repeat("a", 4001)},
			want: "Content must be at most 4000 characters",
		},
		{
			name: "gt",
			req:  &rateMovieRequest{MovieID: -1, Score: 5},
			want: "MovieID must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected message containing %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("expected the same validator instance")
	}
}
