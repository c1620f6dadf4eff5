package errors

import (
	"testing"

	"proptrust/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesAfterWithDetails(t *testing.T) {
	err := ErrPreconditionFailed.WithDetails("listing is live")

	assert.True(t, errors.Is(err, ErrPreconditionFailed))
	assert.False(t, errors.Is(err, ErrListingNotFound))
	assert.Equal(t, "listing state does not allow this action: listing is live", err.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "predefined", err: ErrListingNotFound, want: KindNotFound},
		{name: "wrapped", err: errors.Wrap(ErrTimeout, "find listing"), want: KindTimeout},
		{name: "database", err: NewDatabaseExecuteError(errors.New("boom"), ""), want: KindInternal},
		{name: "plain", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
