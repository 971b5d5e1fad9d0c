package cleanup

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/giantswarm/azure-node-cleanup/pkg/idref"
)

// expectFullCascade sets up a node with one network interface, one public
// IP, an OS and a data disk and an orphaned availability set.
func expectFullCascade(ctrl *gomock.Controller, m mocks, ipTags map[string]*string, deleteIP bool) {
	m.virtualMachines.EXPECT().Get(gomock.Any(), resourceGroup, "vm1").Return(newVirtualMachine(), nil).Times(1)
	m.virtualMachines.EXPECT().Delete(gomock.Any(), resourceGroup, "vm1").Return(doneHandle(ctrl), nil).Times(1)

	m.interfaces.EXPECT().Get(gomock.Any(), resourceGroup, "nic1").Return(newInterface(), nil).Times(1)
	m.interfaces.EXPECT().Delete(gomock.Any(), resourceGroup, "nic1").Return(doneHandle(ctrl), nil).Times(1)

	m.publicIPAddresses.EXPECT().Get(gomock.Any(), resourceGroup, "ip1").Return(newPublicIP(ipTags), nil).Times(1)
	if deleteIP {
		m.publicIPAddresses.EXPECT().Delete(gomock.Any(), resourceGroup, "ip1").Return(doneHandle(ctrl), nil).Times(1)
	} else {
		m.publicIPAddresses.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	}

	m.disks.EXPECT().Delete(gomock.Any(), resourceGroup, "vm1-os").Return(doneHandle(ctrl), nil).Times(1)
	m.disks.EXPECT().Delete(gomock.Any(), resourceGroup, "vm1-data").Return(doneHandle(ctrl), nil).Times(1)
	m.disks.EXPECT().Get(gomock.Any(), resourceGroup, "vm1-os").Return(nil, nil).Times(1)
	m.disks.EXPECT().Get(gomock.Any(), resourceGroup, "vm1-data").Return(nil, nil).Times(1)

	m.availabilitySets.EXPECT().Get(gomock.Any(), resourceGroup, "set1").Return(newAvailabilitySet(managedTags()), nil).Times(1)
	m.availabilitySets.EXPECT().Delete(gomock.Any(), resourceGroup, "set1").Return(nil, nil).Times(1)

	m.virtualNetworks.EXPECT().List(gomock.Any(), resourceGroup).Return(nil, nil).Times(1)
}

func Test_CleanupNode_FullCascade(t *testing.T) {
	testCases := []struct {
		name             string
		parallel         bool
		ipTags           map[string]*string
		deleteIP         bool
		expectedDeleted  map[string]int
		expectedRetained map[string]int
	}{
		{
			name:     "case 0: autogenerated public IP is deleted with the node",
			ipTags:   autogeneratedTags(),
			deleteIP: true,
			expectedDeleted: map[string]int{
				kindAvailabilitySet:  1,
				kindDisk:             2,
				kindNetworkInterface: 1,
				kindPublicIPAddress:  1,
				kindVirtualMachine:   1,
			},
			expectedRetained: map[string]int{},
		},
		{
			name:     "case 1: untagged public IP survives",
			ipTags:   nil,
			deleteIP: false,
			expectedDeleted: map[string]int{
				kindAvailabilitySet:  1,
				kindDisk:             2,
				kindNetworkInterface: 1,
				kindVirtualMachine:   1,
			},
			expectedRetained: map[string]int{},
		},
		{
			name:     "case 2: parallel network interface and disk cleanup",
			parallel: true,
			ipTags:   autogeneratedTags(),
			deleteIP: true,
			expectedDeleted: map[string]int{
				kindAvailabilitySet:  1,
				kindDisk:             2,
				kindNetworkInterface: 1,
				kindPublicIPAddress:  1,
				kindVirtualMachine:   1,
			},
			expectedRetained: map[string]int{},
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c, m, r := newTestCleaner(t, ctrl, tc.parallel)
			expectFullCascade(ctrl, m, tc.ipTags, tc.deleteIP)

			deleted, err := c.CleanupNode(context.Background(), "rg1/vm1")
			if err != nil {
				t.Fatalf("error == %#v, want nil", err)
			}
			if !deleted {
				t.Fatalf("CleanupNode() == false, want true")
			}

			if !cmp.Equal(r.deleted, tc.expectedDeleted) {
				t.Fatalf("\n\n%s\n", cmp.Diff(tc.expectedDeleted, r.deleted))
			}
			if !cmp.Equal(r.retained, tc.expectedRetained) {
				t.Fatalf("\n\n%s\n", cmp.Diff(tc.expectedRetained, r.retained))
			}
		})
	}
}

func Test_CleanupNode_StillListedInResourceGroup(t *testing.T) {
	testCases := []struct {
		name        string
		stillListed []string
	}{
		{
			name:        "case 0: virtual machine still listed after deletion",
			stillListed: []string{"vm1"},
		},
		{
			name:        "case 1: virtual machine and disks still listed after deletion",
			stillListed: []string{"vm1", "vm1-os", "vm1-data"},
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c, m, r := newTestCleaner(t, ctrl, false)
			expectFullCascade(ctrl, m, autogeneratedTags(), true)

			listing := newGroupListing(tc.stillListed...)
			c.notInResourceGroup = listing

			deleted, err := c.CleanupNode(context.Background(), "rg1/vm1")
			if err != nil {
				t.Fatalf("error == %#v, want nil", err)
			}
			if !deleted {
				t.Fatalf("CleanupNode() == false, want true")
			}

			expectedChecked := []string{"vm1", "vm1-os", "vm1-data"}
			if !cmp.Equal(listing.checked, expectedChecked) {
				t.Fatalf("\n\n%s\n", cmp.Diff(expectedChecked, listing.checked))
			}
			if r.deleted[kindVirtualMachine] != 1 {
				t.Fatalf("virtual machine deletions == %d, want 1", r.deleted[kindVirtualMachine])
			}
		})
	}
}

func Test_CleanupNode_AbsentVirtualMachine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, m, r := newTestCleaner(t, ctrl, false)

	m.virtualMachines.EXPECT().Get(gomock.Any(), resourceGroup, "vm1").Return(nil, nil).Times(1)
	m.virtualMachines.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	deleted, err := c.CleanupNode(context.Background(), "rg1/vm1")
	if err != nil {
		t.Fatalf("error == %#v, want nil", err)
	}
	if !deleted {
		t.Fatalf("CleanupNode() == false, want true")
	}
	if len(r.deleted) != 0 || len(r.retained) != 0 {
		t.Fatalf("recorded deletions %v %v, want none", r.deleted, r.retained)
	}
}

func Test_CleanupNode_MalformedNodeID(t *testing.T) {
	testCases := []string{
		"",
		"vm1",
		"rg1/",
		"/vm1",
		"rg1/vm1/extra",
	}

	for i, id := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(id)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c, _, _ := newTestCleaner(t, ctrl, false)

			_, err := c.CleanupNode(context.Background(), id)
			if !idref.IsMalformedNodeID(err) {
				t.Fatalf("error == %#v, want malformedNodeIDError", err)
			}
		})
	}
}

func Test_CleanupNode_VirtualMachineErrorsPropagate(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(m mocks)
	}{
		{
			name: "case 0: get fails",
			setup: func(m mocks) {
				m.virtualMachines.EXPECT().Get(gomock.Any(), resourceGroup, "vm1").Return(nil, errors.New("boom")).Times(1)
			},
		},
		{
			name: "case 1: delete fails",
			setup: func(m mocks) {
				m.virtualMachines.EXPECT().Get(gomock.Any(), resourceGroup, "vm1").Return(newVirtualMachine(), nil).Times(1)
				m.virtualMachines.EXPECT().Delete(gomock.Any(), resourceGroup, "vm1").Return(nil, autorest.DetailedError{StatusCode: http.StatusForbidden}).Times(1)
			},
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			c, m, _ := newTestCleaner(t, ctrl, false)
			tc.setup(m)

			deleted, err := c.CleanupNode(context.Background(), "rg1/vm1")
			if err == nil {
				t.Fatalf("error == nil, want non-nil")
			}
			if deleted {
				t.Fatalf("CleanupNode() == true, want false")
			}
		})
	}
}

func Test_CleanupNode_ResultOnlyReflectsVirtualMachine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, m, r := newTestCleaner(t, ctrl, false)

	vm := newVirtualMachine()
	vm.AvailabilitySet = nil
	vm.StorageProfile = nil

	m.virtualMachines.EXPECT().Get(gomock.Any(), resourceGroup, "vm1").Return(vm, nil).Times(1)
	m.virtualMachines.EXPECT().Delete(gomock.Any(), resourceGroup, "vm1").Return(doneHandle(ctrl), nil).Times(1)
	m.interfaces.EXPECT().Get(gomock.Any(), resourceGroup, "nic1").Return(nil, errors.New("throttled")).Times(1)
	m.virtualNetworks.EXPECT().List(gomock.Any(), resourceGroup).Return(nil, errors.New("throttled")).Times(1)

	deleted, err := c.CleanupNode(context.Background(), "rg1/vm1")
	if err != nil {
		t.Fatalf("error == %#v, want nil", err)
	}
	if !deleted {
		t.Fatalf("CleanupNode() == false, want true")
	}
	if r.deleted[kindVirtualMachine] != 1 {
		t.Fatalf("virtual machine deletions == %d, want 1", r.deleted[kindVirtualMachine])
	}
}

func Test_CleanupNode_UnconfirmedVirtualMachineDeletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, m, r := newTestCleaner(t, ctrl, false)

	vm := newVirtualMachine()
	vm.AvailabilitySet = nil
	vm.StorageProfile = nil
	vm.NetworkProfile = nil

	m.virtualMachines.EXPECT().Get(gomock.Any(), resourceGroup, "vm1").Return(vm, nil).Times(1)
	m.virtualMachines.EXPECT().Delete(gomock.Any(), resourceGroup, "vm1").Return(stuckHandle(ctrl), nil).Times(1)
	m.virtualNetworks.EXPECT().List(gomock.Any(), resourceGroup).Return(nil, nil).Times(1)

	deleted, err := c.CleanupNode(context.Background(), "rg1/vm1")
	if err != nil {
		t.Fatalf("error == %#v, want nil", err)
	}
	if deleted {
		t.Fatalf("CleanupNode() == true, want false")
	}
	if r.retained[kindVirtualMachine] != 1 {
		t.Fatalf("retained virtual machines == %d, want 1", r.retained[kindVirtualMachine])
	}
}

func inUseError(code string) error {
	return autorest.DetailedError{
		Original: &azure.RequestError{
			ServiceError: &azure.ServiceError{Code: code},
		},
		StatusCode: http.StatusBadRequest,
	}
}
