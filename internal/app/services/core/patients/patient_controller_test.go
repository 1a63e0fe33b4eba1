package patients

import (
	"testing"
	"time"

	"avalia-service/internal/app/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewPatientControllerStoreTimeout(t *testing.T) {
	internalConfig := &config.InternalConfig{
		App: config.App{StoreTimeoutInSeconds: 15},
	}

	ctrl := NewPatientController(zap.NewNop(), internalConfig, nil)

	assert.Equal(t, 15*time.Second, ctrl.StoreTimeout)
}
