package idref

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		expectedRef  IDReference
		errorMatcher func(err error) bool
	}{
		{
			name: "case 0: managed disk",
			id:   "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg1/providers/Microsoft.Compute/disks/vm1-os",
			expectedRef: IDReference{
				ResourceGroup: "rg1",
				Name:          "vm1-os",
				ID:            "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/rg1/providers/Microsoft.Compute/disks/vm1-os",
			},
		},
		{
			name: "case 1: resource group segment is case insensitive",
			id:   "/subscriptions/sub/resourcegroups/RG1/providers/Microsoft.Network/publicIPAddresses/ip1",
			expectedRef: IDReference{
				ResourceGroup: "RG1",
				Name:          "ip1",
				ID:            "/subscriptions/sub/resourcegroups/RG1/providers/Microsoft.Network/publicIPAddresses/ip1",
			},
		},
		{
			name: "case 2: nested resource resolves to last segment",
			id:   "/subscriptions/sub/resourceGroups/rg1/providers/Microsoft.Network/virtualNetworks/vnet1/subnets/default",
			expectedRef: IDReference{
				ResourceGroup: "rg1",
				Name:          "default",
				ID:            "/subscriptions/sub/resourceGroups/rg1/providers/Microsoft.Network/virtualNetworks/vnet1/subnets/default",
			},
		},
		{
			name:         "case 3: empty string",
			id:           "",
			errorMatcher: IsMalformedIdentifier,
		},
		{
			name:         "case 4: missing resource group",
			id:           "/subscriptions/sub/providers/Microsoft.Compute/disks/d1",
			errorMatcher: IsMalformedIdentifier,
		},
		{
			name:         "case 5: trailing slash leaves no name",
			id:           "/subscriptions/sub/resourceGroups/rg1/providers/Microsoft.Compute/disks/d1/",
			errorMatcher: IsMalformedIdentifier,
		},
		{
			name:         "case 6: resource group id is not a resource",
			id:           "/subscriptions/sub/resourceGroups/rg1",
			errorMatcher: IsMalformedIdentifier,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			ref, err := Parse(tc.id)

			switch {
			case err == nil && tc.errorMatcher == nil:
				// correct; carry on
			case err != nil && tc.errorMatcher == nil:
				t.Fatalf("error == %#v, want nil", err)
			case err == nil && tc.errorMatcher != nil:
				t.Fatalf("error == nil, want non-nil")
			case !tc.errorMatcher(err):
				t.Fatalf("error == %#v, want matching", err)
			}

			if !cmp.Equal(ref, tc.expectedRef) {
				t.Fatalf("\n\n%s\n", cmp.Diff(tc.expectedRef, ref))
			}
		})
	}
}

func Test_IDReference_String(t *testing.T) {
	ref := IDReference{ResourceGroup: "rg1", Name: "nic1"}

	if ref.String() != "rg1/nic1" {
		t.Fatalf("got %q, want %q", ref.String(), "rg1/nic1")
	}
}
