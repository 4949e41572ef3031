package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsOverlapViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "exclusion on overlap constraint",
			err:  &pgconn.PgError{Code: "23P01", ConstraintName: "appointments_no_overlap"},
			want: true,
		},
		{
			name: "wrapped exclusion",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01", ConstraintName: "appointments_no_overlap"}),
			want: true,
		},
		{
			name: "exclusion on another constraint",
			err:  &pgconn.PgError{Code: "23P01", ConstraintName: "rooms_no_overlap"},
			want: false,
		},
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "appointments_pkey"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isOverlapViolation(tt.err); got != tt.want {
				t.Fatalf("isOverlapViolation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatalf("isUniqueViolation = false, want true")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23P01"}) {
		t.Fatalf("isUniqueViolation = true, want false")
	}
}
