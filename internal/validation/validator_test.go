// SentinelLite - Security Event Dashboard Backend
// Copyright 2026 SentinelLite Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentinel-lite/sentinel-lite

package validation

import (
	"strings"
	"testing"
)

type pagingQuery struct {
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1,max=100"`
}

type alertInput struct {
	RiskScore *int   `validate:"omitempty,min=0,max=100"`
	Severity  string `validate:"omitempty,oneof=Low Medium High Critical"`
}

func intPtr(v int) *int { return &v }

func TestValidateStructPassing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input interface{}
	}{
		{"valid paging", &pagingQuery{Page: 1, Limit: 25}},
		{"paging at max", &pagingQuery{Page: 100, Limit: 100}},
		{"alert without optional fields", &alertInput{}},
		{"alert with risk score", &alertInput{RiskScore: intPtr(50)}},
		{"alert risk score boundary", &alertInput{RiskScore: intPtr(100)}},
		{"alert with severity", &alertInput{Severity: "Critical"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("expected valid input, got error: %v", err)
			}
		})
	}
}

func TestValidateStructFailing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantMsg   string
	}{
		{
			name:      "page zero",
			input:     &pagingQuery{Page: 0, Limit: 25},
			wantField: "Page",
			wantMsg:   "at least 1",
		},
		{
			name:      "limit over max",
			input:     &pagingQuery{Page: 1, Limit: 500},
			wantField: "Limit",
			wantMsg:   "at most 100",
		},
		{
			name:      "negative risk score",
			input:     &alertInput{RiskScore: intPtr(-5)},
			wantField: "RiskScore",
			wantMsg:   "at least 0",
		},
		{
			name:      "risk score over 100",
			input:     &alertInput{RiskScore: intPtr(120)},
			wantField: "RiskScore",
			wantMsg:   "at most 100",
		},
		{
			name:      "unknown severity",
			input:     &alertInput{Severity: "Extreme"},
			wantField: "Severity",
			wantMsg:   "must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, errs[0].Field())
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&pagingQuery{Page: 0, Limit: 0})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if len(err.Errors()) != 2 {
		t.Errorf("expected 2 errors, got %d", len(err.Errors()))
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected combined message, got %q", err.Error())
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("expected the same validator instance on repeated calls")
	}
}
