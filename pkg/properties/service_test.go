// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package properties

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/landlordos/property-service/internal/logging"
	"github.com/landlordos/property-service/internal/monitoring"
	"github.com/landlordos/property-service/internal/storage"
	"github.com/landlordos/property-service/internal/tracing"
	"github.com/landlordos/property-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package properties -destination ./mock_properties.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return s, mockStorage
}

func TestService_CreateProperty(t *testing.T) {
	userID := "user-123"
	property := &types.Property{ID: "prop-1", UserID: userID, Name: "Elm Street Duplex"}

	testCases := []struct {
		name        string
		tier        string
		count       int64
		countCalled bool
		created     bool
		expectedErr error
	}{
		{name: "free tier under limit", tier: types.TierFree, count: 1, countCalled: true, created: true},
		{name: "free tier at limit", tier: types.TierFree, count: 2, countCalled: true, expectedErr: ErrPropertyLimitReached},
		{name: "starter tier under limit", tier: types.TierStarter, count: 9, countCalled: true, created: true},
		{name: "starter tier at limit", tier: types.TierStarter, count: 10, countCalled: true, expectedErr: ErrPropertyLimitReached},
		{name: "pro tier skips the count", tier: types.TierPro, created: true},
		{name: "unknown tier falls back to free limit", tier: "enterprise", count: 2, countCalled: true, expectedErr: ErrPropertyLimitReached},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage := newTestService(t)

			mockStorage.EXPECT().GetUserByID(gomock.Any(), userID).
				Return(&types.User{ID: userID, SubscriptionTier: tc.tier}, nil)
			if tc.countCalled {
				mockStorage.EXPECT().CountPropertiesByUserID(gomock.Any(), userID).Return(tc.count, nil)
			}
			if tc.created {
				mockStorage.EXPECT().CreateProperty(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *types.Property) (*types.Property, error) {
						if p.UserID != userID {
							return nil, errors.New("property not bound to caller")
						}
						return property, nil
					})
			}

			got, err := s.CreateProperty(context.Background(), userID, &types.Property{Name: "Elm Street Duplex"})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != property.ID {
				t.Errorf("expected property %s, got %s", property.ID, got.ID)
			}
		})
	}
}

func TestService_GetProperty(t *testing.T) {
	s, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetPropertyByID(gomock.Any(), "prop-1", "user-123").Return(nil, storage.ErrNotFound)

	_, err := s.GetProperty(context.Background(), "prop-1", "user-123")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ListProperties(t *testing.T) {
	s, mockStorage := newTestService(t)
	userID := "user-123"
	page := []*types.Property{{ID: "prop-1"}, {ID: "prop-2"}}

	mockStorage.EXPECT().ListPropertiesByUserID(gomock.Any(), userID, uint64(1), uint64(50)).Return(page, nil)
	mockStorage.EXPECT().CountPropertiesByUserID(gomock.Any(), userID).Return(int64(7), nil)

	properties, total, err := s.ListProperties(context.Background(), userID, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(properties) != 2 {
		t.Errorf("expected 2 properties, got %d", len(properties))
	}
	if total != 7 {
		t.Errorf("expected total 7, got %d", total)
	}
}

func TestService_UpdateProperty(t *testing.T) {
	s, mockStorage := newTestService(t)
	userID := "user-123"
	updated := &types.Property{ID: "prop-1", UserID: userID, Name: "Renamed"}

	mockStorage.EXPECT().UpdateProperty(gomock.Any(), gomock.Any(), []string{"name"}).DoAndReturn(
		func(_ context.Context, p *types.Property, _ []string) error {
			if p.UserID != userID {
				return errors.New("owner filter missing")
			}
			return nil
		})
	mockStorage.EXPECT().GetPropertyByID(gomock.Any(), "prop-1", userID).Return(updated, nil)

	got, err := s.UpdateProperty(context.Background(), userID, &types.Property{ID: "prop-1", Name: "Renamed"}, []string{"name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("expected renamed property, got %q", got.Name)
	}
}

func TestService_DeleteProperty(t *testing.T) {
	s, mockStorage := newTestService(t)

	mockStorage.EXPECT().DeleteProperty(gomock.Any(), "prop-1", "user-123").Return(storage.ErrNotFound)

	err := s.DeleteProperty(context.Background(), "prop-1", "user-123")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
