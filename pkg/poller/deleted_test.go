package poller

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/giantswarm/micrologger/microloggertest"
	"github.com/golang/mock/gomock"

	"github.com/giantswarm/azure-node-cleanup/pkg/azureapi"
	"github.com/giantswarm/azure-node-cleanup/pkg/mock/mock_azureapi"
)

func Test_Deleted_Await(t *testing.T) {
	testCases := []struct {
		name           string
		setupHandle    func(h *mock_azureapi.MockOperationHandle)
		nilHandle      bool
		expectedResult bool
	}{
		{
			name:           "case 0: nil handle is done right away",
			nilHandle:      true,
			expectedResult: true,
		},
		{
			name: "case 1: operation done on first poll",
			setupHandle: func(h *mock_azureapi.MockOperationHandle) {
				h.EXPECT().Done(gomock.Any()).Return(true, nil).Times(1)
			},
			expectedResult: true,
		},
		{
			name: "case 2: operation done on third poll",
			setupHandle: func(h *mock_azureapi.MockOperationHandle) {
				gomock.InOrder(
					h.EXPECT().Done(gomock.Any()).Return(false, nil).Times(2),
					h.EXPECT().Done(gomock.Any()).Return(true, nil).Times(1),
				)
			},
			expectedResult: true,
		},
		{
			name: "case 3: operation never finishes",
			setupHandle: func(h *mock_azureapi.MockOperationHandle) {
				h.EXPECT().Done(gomock.Any()).Return(false, nil).MinTimes(1)
				h.EXPECT().PollingURL().Return("https://management.azure.com/operations/1").AnyTimes()
			},
			expectedResult: false,
		},
		{
			name: "case 4: polling keeps failing",
			setupHandle: func(h *mock_azureapi.MockOperationHandle) {
				h.EXPECT().Done(gomock.Any()).Return(false, errors.New("connection reset")).MinTimes(1)
				h.EXPECT().PollingURL().Return("https://management.azure.com/operations/2").AnyTimes()
			},
			expectedResult: false,
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var handle azureapi.OperationHandle
			if !tc.nilHandle {
				h := mock_azureapi.NewMockOperationHandle(ctrl)
				tc.setupHandle(h)
				handle = h
			}

			d, err := NewDeleted(DeletedConfig{
				Logger:   microloggertest.New(),
				Interval: time.Millisecond,
				MaxWait:  50 * time.Millisecond,
			})
			if err != nil {
				t.Fatal(err)
			}

			result := d.Await(context.Background(), handle)
			if result != tc.expectedResult {
				t.Fatalf("Await() == %t, want %t", result, tc.expectedResult)
			}
		})
	}
}

func Test_NewDeleted_InvalidConfig(t *testing.T) {
	testCases := []struct {
		name   string
		config DeletedConfig
	}{
		{
			name: "case 0: missing logger",
			config: DeletedConfig{
				Interval: time.Second,
				MaxWait:  time.Minute,
			},
		},
		{
			name: "case 1: zero interval",
			config: DeletedConfig{
				Logger:  microloggertest.New(),
				MaxWait: time.Minute,
			},
		},
		{
			name: "case 2: max wait smaller than interval",
			config: DeletedConfig{
				Logger:   microloggertest.New(),
				Interval: time.Minute,
				MaxWait:  time.Second,
			},
		},
	}

	for i, tc := range testCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Log(tc.name)

			_, err := NewDeleted(tc.config)
			if !IsInvalidConfig(err) {
				t.Fatalf("error == %#v, want invalidConfigError", err)
			}
		})
	}
}
