package pagination_test

import (
	"testing"
	"time"

	"github.com/eventstaff/esa_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	eventDate := time.Date(2025, 6, 14, 21, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 1, 10, 30, 0, 123456789, time.UTC)

	token := pagination.EncodeToken(eventDate, createdAt)
	gotEvent, gotCreated, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, eventDate.Equal(gotEvent))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!")
	assert.Error(t, err)

	// Valid base64 but missing the separator.
	_, _, err = pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}

func TestDateBasedToken_RoundTrip(t *testing.T) {
	date := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	token := pagination.EncodeDateBasedToken(date)
	got, err := pagination.DecodeDateBasedToken(token)
	require.NoError(t, err)
	assert.True(t, date.Equal(got))
}
