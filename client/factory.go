package client

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	gocache "github.com/patrickmn/go-cache"

	"github.com/giantswarm/azure-node-cleanup/service/collector"
)

const (
	cacheHitLogKey       = "cacheHit"
	clientIDLogKey       = "clientID"
	logLevelLogKey       = "level"
	logLevelDebug        = "debug"
	messageLogKey        = "message"
	subscriptionIDLogKey = "subscriptionID"
)

type FactoryConfig struct {
	AzureAPIMetrics collector.AzureAPIMetrics
	CacheDuration   time.Duration
	Logger          micrologger.Logger
}

// Factory creates Azure client sets per service principal and subscription.
// Created client sets are cached so that repeated cleanups against the same
// subscription share one authorizer and one backpressure gate.
type Factory struct {
	logger           micrologger.Logger
	metricsCollector collector.AzureAPIMetrics
	mutex            sync.Mutex

	// map [subscriptionID + clientID] -> *AzureClientSet
	cachedClientSets *gocache.Cache
}

func NewFactory(config FactoryConfig) (*Factory, error) {
	if config.AzureAPIMetrics == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.AzureAPIMetrics must not be empty", config)
	}
	if config.CacheDuration <= 0 {
		return nil, microerror.Maskf(invalidConfigError, "%T.CacheDuration must be greater than zero", config)
	}
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}

	factory := &Factory{
		logger:           config.Logger,
		metricsCollector: config.AzureAPIMetrics,
		cachedClientSets: gocache.New(config.CacheDuration, 2*config.CacheDuration),
	}

	factory.cachedClientSets.OnEvicted(func(key string, i interface{}) {
		factory.onEvicted(key)
	})

	return factory, nil
}

// GetClientSet returns the client set for the given credentials. The client
// set is cached after creation and its expiry refreshed on every lookup.
func (f *Factory) GetClientSet(config AzureClientSetConfig) (*AzureClientSet, error) {
	err := config.Validate()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	l := f.logger.With(
		logLevelLogKey, logLevelDebug,
		messageLogKey, "get client set",
		subscriptionIDLogKey, config.SubscriptionID,
		clientIDLogKey, config.ClientID)

	key := getClientSetKey(config.SubscriptionID, config.ClientID)

	f.mutex.Lock()
	defer f.mutex.Unlock()

	var clientSet *AzureClientSet
	if cached, ok := f.cachedClientSets.Get(key); ok {
		l.Log(cacheHitLogKey, true)
		clientSet = cached.(*AzureClientSet)
	} else {
		l.Log(cacheHitLogKey, false)
		clientSet, err = NewAzureClientSet(config, f.metricsCollector)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	f.cachedClientSets.SetDefault(key, clientSet)

	return clientSet, nil
}

func getClientSetKey(subscriptionID, clientID string) string {
	return fmt.Sprintf("%s/%s", subscriptionID, clientID)
}

func getClientSetKeyParts(key string) (subscriptionID, clientID string) {
	parts := strings.SplitN(key, "/", 2)
	if len(parts) != 2 {
		// Only used for logging.
		return "unknown", "unknown"
	}

	return parts[0], parts[1]
}

func (f *Factory) onEvicted(key string) {
	subscriptionID, clientID := getClientSetKeyParts(key)
	f.logger.Log(
		logLevelLogKey, logLevelDebug,
		messageLogKey, "client set evicted",
		subscriptionIDLogKey, subscriptionID,
		clientIDLogKey, clientID)
}
