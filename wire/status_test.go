package wire

import (
	"errors"
	"testing"

	"github.com/arloliu/tscodec/errs"
	"github.com/stretchr/testify/require"
)

func TestVerifySuccess(t *testing.T) {
	require.NoError(t, VerifySuccess(Status{Code: SUCCESS_STATUS}))

	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{"with info", Status{Code: SUCCESS_WITH_INFO_STATUS}, "SUCCESS_WITH_INFO_STATUS"},
		{"still executing", Status{Code: STILL_EXECUTING_STATUS}, "STILL_EXECUTING_STATUS"},
		{"error", Status{Code: ERROR_STATUS, Message: "storage group not set"}, "ERROR_STATUS"},
		{"invalid handle", Status{Code: INVALID_HANDLE_STATUS}, "INVALID_HANDLE_STATUS"},
		{"unknown", Status{Code: 42}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySuccess(tt.status)
			require.ErrorIs(t, err, errs.ErrServerStatus)

			var statusErr *errs.StatusError
			require.True(t, errors.As(err, &statusErr))
			require.Equal(t, tt.want, statusErr.Status)
			require.Equal(t, tt.status.Message, statusErr.Message)
		})
	}
}
