package exceptions

import (
	"avalia-service/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreErrorsSurfaceDeadlineAsTimeout(t *testing.T) {
	customErr := ErrMongoDBFindDocument(context.DeadlineExceeded)
	assert.Equal(t, KindTimeout, customErr.Kind)
	assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)

	wrapped := fmt.Errorf("bulk write: %w", context.DeadlineExceeded)
	customErr = ErrMongoDBBulkWrite(wrapped)
	assert.Equal(t, KindTimeout, customErr.Kind)

	customErr = ErrRedisGet(context.DeadlineExceeded)
	assert.Equal(t, KindTimeout, customErr.Kind)
	assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
}

func TestStoreErrorsDefaultToStoreUnavailable(t *testing.T) {
	customErr := ErrMongoDBFindDocument(errors.New("connection reset"))
	assert.Equal(t, KindStoreUnavailable, customErr.Kind)
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)

	customErr = ErrRedisSet(errors.New("connection reset"))
	assert.Equal(t, KindStoreUnavailable, customErr.Kind)
}
