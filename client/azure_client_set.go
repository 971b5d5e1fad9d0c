package client

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"
	"github.com/Azure/azure-sdk-for-go/services/network/mgmt/2019-11-01/network"
	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-node-cleanup/client/senddecorator"
	"github.com/giantswarm/azure-node-cleanup/pkg/backpressure"
	"github.com/giantswarm/azure-node-cleanup/pkg/project"
	"github.com/giantswarm/azure-node-cleanup/service/collector"
)

const (
	defaultAzureGUID = "37f13270-5c7a-56ff-9211-8426baaeaabd"
)

// AzureClientSet is the collection of Azure API clients needed to tear down
// a node.
type AzureClientSet struct {
	// The subscription ID this client set is configured with.
	SubscriptionID string

	// AvailabilitySetsClient manages availability sets.
	AvailabilitySetsClient *compute.AvailabilitySetsClient
	// DisksClient manages managed disks.
	DisksClient *compute.DisksClient
	// GroupsClient manages ARM resource groups.
	GroupsClient *resources.GroupsClient
	// InterfacesClient manages virtual network interfaces.
	InterfacesClient *network.InterfacesClient
	// PublicIPAddressesClient manages public IP addresses.
	PublicIPAddressesClient *network.PublicIPAddressesClient
	// ResourcesClient lists the resources of a resource group.
	ResourcesClient *resources.Client
	// SecurityGroupsClient manages network security groups.
	SecurityGroupsClient *network.SecurityGroupsClient
	// VirtualMachinesClient manages virtual machines.
	VirtualMachinesClient *compute.VirtualMachinesClient
	// VirtualNetworksClient manages virtual networks.
	VirtualNetworksClient *network.VirtualNetworksClient
}

// NewAzureClientSet returns the Azure API clients for the given service
// principal. All clients share one backpressure gate so that a rate limited
// response blocks the whole subscription. API calls are measured through
// metricsCollector.
func NewAzureClientSet(config AzureClientSetConfig, metricsCollector collector.AzureAPIMetrics) (*AzureClientSet, error) {
	err := config.Validate()
	if err != nil {
		return nil, microerror.Mask(err)
	}
	if metricsCollector == nil {
		return nil, microerror.Maskf(invalidConfigError, "metrics collector must not be empty")
	}

	credentials, err := config.ClientCredentialsConfig()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	authorizer, err := credentials.Authorizer()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	partnerID := config.PartnerID
	if partnerID == "" {
		partnerID = defaultAzureGUID
	}

	p := clientPreparer{
		authorizer:       authorizer,
		backpressure:     backpressure.New(),
		metricsCollector: metricsCollector,
		partnerID:        fmt.Sprintf("pid-%s", partnerID),
		subscriptionID:   config.SubscriptionID,
	}

	baseURI := credentials.Resource
	subscriptionID := config.SubscriptionID

	availabilitySetsClient := compute.NewAvailabilitySetsClientWithBaseURI(baseURI, subscriptionID)
	p.prepare(&availabilitySetsClient.Client, "availability_sets")

	disksClient := compute.NewDisksClientWithBaseURI(baseURI, subscriptionID)
	p.prepare(&disksClient.Client, "disks")

	groupsClient := resources.NewGroupsClientWithBaseURI(baseURI, subscriptionID)
	p.prepare(&groupsClient.Client, "groups")

	interfacesClient := network.NewInterfacesClientWithBaseURI(baseURI, subscriptionID)
	p.prepare(&interfacesClient.Client, "interfaces")

	publicIPAddressesClient := network.NewPublicIPAddressesClientWithBaseURI(baseURI, subscriptionID)
	p.prepare(&publicIPAddressesClient.Client, "public_ip_addresses")

	resourcesClient := resources.NewClientWithBaseURI(baseURI, subscriptionID)
	p.prepare(&resourcesClient.Client, "resources")

	securityGroupsClient := network.NewSecurityGroupsClientWithBaseURI(baseURI, subscriptionID)
	p.prepare(&securityGroupsClient.Client, "network_security_groups")

	virtualMachinesClient := compute.NewVirtualMachinesClientWithBaseURI(baseURI, subscriptionID)
	p.prepare(&virtualMachinesClient.Client, "virtual_machines")

	virtualNetworksClient := network.NewVirtualNetworksClientWithBaseURI(baseURI, subscriptionID)
	p.prepare(&virtualNetworksClient.Client, "virtual_networks")

	clientSet := &AzureClientSet{
		SubscriptionID: subscriptionID,

		AvailabilitySetsClient:  &availabilitySetsClient,
		DisksClient:             &disksClient,
		GroupsClient:            &groupsClient,
		InterfacesClient:        &interfacesClient,
		PublicIPAddressesClient: &publicIPAddressesClient,
		ResourcesClient:         &resourcesClient,
		SecurityGroupsClient:    &securityGroupsClient,
		VirtualMachinesClient:   &virtualMachinesClient,
		VirtualNetworksClient:   &virtualNetworksClient,
	}

	return clientSet, nil
}

type clientPreparer struct {
	authorizer       autorest.Authorizer
	backpressure     *backpressure.Backpressure
	metricsCollector collector.AzureAPIMetrics
	partnerID        string
	subscriptionID   string
}

func (p clientPreparer) prepare(client *autorest.Client, name string) {
	client.Authorizer = p.authorizer
	_ = client.AddToUserAgent(p.partnerID)
	_ = client.AddToUserAgent(fmt.Sprintf("%s/%s", project.Name(), project.Version()))

	senddecorator.WrapClient(
		client,
		// autorest applies send decorators inside out, so the circuit breaker
		// listed last short-circuits throttled requests before they are
		// measured while still seeing every raw 429 response.
		senddecorator.MetricsDecorator(name, p.subscriptionID, p.metricsCollector),
		senddecorator.RateLimitCircuitBreaker(p.backpressure),
	)
}
