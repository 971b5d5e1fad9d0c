package azureapi

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/Azure/go-autorest/autorest"
	"github.com/google/go-cmp/cmp"
)

func newJSONResponse(r *http.Request, statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    r,
	}
}

func Test_resourceGroups_ListResources(t *testing.T) {
	testCases := []struct {
		name         string
		statusCode   int
		body         string
		expectedIDs  []string
		errorMatcher func(err error) bool
	}{
		{
			name:        "case 0: resources of the group are listed",
			statusCode:  http.StatusOK,
			body:        `{"value":[{"id":"/subscriptions/sub/resourceGroups/rg1/providers/Microsoft.Compute/disks/disk1","name":"disk1","createdTime":"2021-01-01T00:00:00Z"},{"id":"/subscriptions/sub/resourceGroups/rg1/providers/Microsoft.Network/virtualNetworks/vnet1","name":"vnet1"}]}`,
			expectedIDs: []string{"/subscriptions/sub/resourceGroups/rg1/providers/Microsoft.Compute/disks/disk1", "/subscriptions/sub/resourceGroups/rg1/providers/Microsoft.Network/virtualNetworks/vnet1"},
		},
		{
			name:       "case 1: empty group",
			statusCode: http.StatusOK,
			body:       `{"value":[]}`,
		},
		{
			name:         "case 2: missing group is reported as not found",
			statusCode:   http.StatusNotFound,
			body:         `{"error":{"code":"ResourceGroupNotFound","message":"Resource group 'rg1' could not be found."}}`,
			errorMatcher: IsNotFound,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			client := resources.NewClientWithBaseURI("https://management.azure.com", "sub")
			client.Sender = autorest.SenderFunc(func(r *http.Request) (*http.Response, error) {
				return newJSONResponse(r, tc.statusCode, tc.body), nil
			})
			client.RetryAttempts = 0

			groups := &resourceGroups{resources: &client}

			listed, err := groups.ListResources(context.Background(), "rg1")

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

			var ids []string
			for _, r := range listed {
				ids = append(ids, *r.ID)
			}

			if !cmp.Equal(ids, tc.expectedIDs) {
				t.Fatalf("\n\n%s\n", cmp.Diff(tc.expectedIDs, ids))
			}
		})
	}
}
