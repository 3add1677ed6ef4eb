package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentItemIsTerminal(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{ContentStatusDraft, false},
		{ContentStatusPending, false},
		{ContentStatusApproved, false},
		{ContentStatusRejected, false},
		{ContentStatusPublished, true},
		{ContentStatusArchived, true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			c := ContentItem{Status: tt.status}
			assert.Equal(t, tt.want, c.IsTerminal())
		})
	}
}

func TestContentItemIsDecidable(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{ContentStatusDraft, true},
		{ContentStatusPending, true},
		{ContentStatusApproved, false},
		{ContentStatusRejected, false},
		{ContentStatusPublished, false},
		{ContentStatusArchived, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			c := ContentItem{Status: tt.status}
			assert.Equal(t, tt.want, c.IsDecidable())
		})
	}
}
