package pricing

import (
	"context"
	"testing"
	"time"

	"nerdspace/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConfigCache_LocalReadThrough(t *testing.T) {
	source := new(MockConfigSource)
	source.On("GetByServiceType", mock.Anything, domain.ServicePodMono).Return(podConfig(), nil).Once()

	cache := NewConfigCache(source, nil, time.Minute)

	first, err := cache.GetByServiceType(context.Background(), domain.ServicePodMono)
	assert.NoError(t, err)
	second, err := cache.GetByServiceType(context.Background(), domain.ServicePodMono)
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	// Only one trip to the source.
	source.AssertNumberOfCalls(t, "GetByServiceType", 1)
}

func TestConfigCache_InvalidateForcesReload(t *testing.T) {
	source := new(MockConfigSource)
	source.On("GetByServiceType", mock.Anything, domain.ServicePodMono).Return(podConfig(), nil)

	cache := NewConfigCache(source, nil, time.Minute)

	_, err := cache.GetByServiceType(context.Background(), domain.ServicePodMono)
	assert.NoError(t, err)
	cache.Invalidate(context.Background(), domain.ServicePodMono)
	_, err = cache.GetByServiceType(context.Background(), domain.ServicePodMono)
	assert.NoError(t, err)

	source.AssertNumberOfCalls(t, "GetByServiceType", 2)
}
