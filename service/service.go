package service

import (
	"context"
	"sync"
	"time"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/viper"

	"github.com/giantswarm/azure-node-cleanup/client"
	"github.com/giantswarm/azure-node-cleanup/flag"
	"github.com/giantswarm/azure-node-cleanup/pkg/azureapi"
	"github.com/giantswarm/azure-node-cleanup/pkg/naming"
	"github.com/giantswarm/azure-node-cleanup/pkg/ownership"
	"github.com/giantswarm/azure-node-cleanup/pkg/poller"
	"github.com/giantswarm/azure-node-cleanup/service/cleanup"
	"github.com/giantswarm/azure-node-cleanup/service/collector"
)

const (
	defaultClientCacheDuration        = 10 * time.Minute
	defaultNotInResourceGroup         = 5 * time.Minute
	defaultNotInResourceGroupInterval = 5 * time.Second
	defaultResourceDeleted            = 10 * time.Minute
	defaultResourceDeletedInterval    = 5 * time.Second
)

// Config represents the configuration used to create a new service.
type Config struct {
	Logger micrologger.Logger

	Flag  *flag.Flag
	Viper *viper.Viper
}

type Service struct {
	Cleaner *cleanup.Cleaner

	bootOnce     sync.Once
	collectorSet *collector.Set
	logger       micrologger.Logger
}

// New creates a new configured service object.
func New(config Config) (*Service, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Flag == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Flag must not be empty", config)
	}
	if config.Viper == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Viper must not be empty", config)
	}

	setDefaults(config.Flag, config.Viper)

	var err error

	var azureAPIMetrics *collector.AzureAPIMetricsCollector
	{
		c := collector.Config{
			Logger: config.Logger,
		}

		azureAPIMetrics, err = collector.NewAzureAPIMetricsCollector(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var deletions *collector.Deletions
	{
		c := collector.DeletionsConfig{
			Logger: config.Logger,
		}

		deletions, err = collector.NewDeletions(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var collectorSet *collector.Set
	{
		c := collector.SetConfig{
			AzureAPIMetrics: azureAPIMetrics,
			Deletions:       deletions,
			Logger:          config.Logger,
		}

		collectorSet, err = collector.NewSet(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var clientFactory *client.Factory
	{
		c := client.FactoryConfig{
			AzureAPIMetrics: azureAPIMetrics,
			CacheDuration:   config.Viper.GetDuration(config.Flag.Service.Azure.ClientCacheDuration),
			Logger:          config.Logger,
		}

		clientFactory, err = client.NewFactory(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var clientSet *client.AzureClientSet
	{
		c := client.AzureClientSetConfig{
			ClientID:        config.Viper.GetString(config.Flag.Service.Azure.ClientID),
			ClientSecret:    config.Viper.GetString(config.Flag.Service.Azure.ClientSecret),
			EnvironmentName: config.Viper.GetString(config.Flag.Service.Azure.EnvironmentName),
			PartnerID:       config.Viper.GetString(config.Flag.Service.Azure.PartnerID),
			SubscriptionID:  config.Viper.GetString(config.Flag.Service.Azure.SubscriptionID),
			TenantID:        config.Viper.GetString(config.Flag.Service.Azure.TenantID),
		}

		clientSet, err = clientFactory.GetClientSet(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	api := azureapi.New(clientSet)

	var resourceDeleted *poller.Deleted
	{
		c := poller.DeletedConfig{
			Logger: config.Logger,

			Interval: config.Viper.GetDuration(config.Flag.Service.Cleanup.Timeout.ResourceDeletedInterval),
			MaxWait:  config.Viper.GetDuration(config.Flag.Service.Cleanup.Timeout.ResourceDeleted),
		}

		resourceDeleted, err = poller.NewDeleted(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var notInResourceGroup *poller.AbsentFromGroup
	{
		c := poller.AbsentFromGroupConfig{
			Lister: api.ResourceGroups,
			Logger: config.Logger,

			Interval: config.Viper.GetDuration(config.Flag.Service.Cleanup.Timeout.NotInResourceGroupInterval),
			MaxWait:  config.Viper.GetDuration(config.Flag.Service.Cleanup.Timeout.NotInResourceGroup),
		}

		notInResourceGroup, err = poller.NewAbsentFromGroup(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var resourceGone *poller.NotFound
	{
		c := poller.NotFoundConfig{
			Logger: config.Logger,

			MaxWait: config.Viper.GetDuration(config.Flag.Service.Cleanup.Timeout.DiskNotFound),
		}

		resourceGone, err = poller.NewNotFound(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var namingConvention *naming.Prefix
	{
		c := naming.PrefixConfig{
			Prefix: config.Viper.GetString(config.Flag.Service.Cleanup.Naming.Prefix),
		}

		namingConvention, err = naming.NewPrefix(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	var cleaner *cleanup.Cleaner
	{
		c := cleanup.Config{
			API:                api,
			Logger:             config.Logger,
			Metrics:            deletions,
			Naming:             namingConvention,
			NotInResourceGroup: notInResourceGroup,
			ResourceDeleted:    resourceDeleted,
			ResourceGone:       resourceGone,

			Policy: ownership.Policy{
				ManagedTagKey:         config.Viper.GetString(config.Flag.Service.Cleanup.Tags.Managed),
				AutogeneratedIPTagKey: config.Viper.GetString(config.Flag.Service.Cleanup.Tags.AutogeneratedIP),
			},
			Parallel: config.Viper.GetBool(config.Flag.Service.Cleanup.Parallel),
		}

		cleaner, err = cleanup.New(c)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	s := &Service{
		Cleaner: cleaner,

		collectorSet: collectorSet,
		logger:       config.Logger,
	}

	return s, nil
}

// Boot registers and serves the metrics collectors. It is safe to call Boot
// more than once.
func (s *Service) Boot(ctx context.Context) {
	s.bootOnce.Do(func() {
		go func() {
			err := s.collectorSet.Boot(ctx)
			if err != nil {
				s.logger.Errorf(ctx, err, "failed to boot collector set")
			}
		}()
	})
}

func setDefaults(f *flag.Flag, v *viper.Viper) {
	v.SetDefault(f.Service.Azure.ClientCacheDuration, defaultClientCacheDuration)

	v.SetDefault(f.Service.Cleanup.Naming.Prefix, naming.DefaultPrefix)
	v.SetDefault(f.Service.Cleanup.Parallel, false)
	v.SetDefault(f.Service.Cleanup.Tags.AutogeneratedIP, ownership.DefaultAutogeneratedIPTagKey)
	v.SetDefault(f.Service.Cleanup.Tags.Managed, ownership.DefaultManagedTagKey)
	v.SetDefault(f.Service.Cleanup.Timeout.DiskNotFound, poller.DefaultNotFoundMaxWait)
	v.SetDefault(f.Service.Cleanup.Timeout.NotInResourceGroup, defaultNotInResourceGroup)
	v.SetDefault(f.Service.Cleanup.Timeout.NotInResourceGroupInterval, defaultNotInResourceGroupInterval)
	v.SetDefault(f.Service.Cleanup.Timeout.ResourceDeleted, defaultResourceDeleted)
	v.SetDefault(f.Service.Cleanup.Timeout.ResourceDeletedInterval, defaultResourceDeletedInterval)
}
