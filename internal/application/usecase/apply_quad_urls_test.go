package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/quadchat/internal/application/port"
	"github.com/bnema/quadchat/internal/application/port/mocks"
	"github.com/bnema/quadchat/internal/application/usecase"
	"github.com/bnema/quadchat/internal/domain/entity"
)

func TestApplyQuadURLsUseCase_Execute(t *testing.T) {
	t.Run("navigates children by slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)

		first := newSlottedChild(ctrl, "webview1", entity.SlotTopLeft, false)
		fourth := newSlottedChild(ctrl, "webview4", entity.SlotBottomRight, false)
		skipped := newSlottedChild(ctrl, "webview2", entity.SlotTopRight, false)
		first.EXPECT().Navigate(gomock.Any(), "https://a.example").Return(nil)
		fourth.EXPECT().Navigate(gomock.Any(), "https://d.example").Return(nil)

		registry.EXPECT().Children(port.MainWindowLabel).Return([]port.ChildView{fourth, skipped, first})

		n, err := usecase.NewApplyQuadURLsUseCase(registry).Execute(context.Background(), port.MainWindowLabel, entity.QuadURLs{
			URL1: "https://a.example",
			URL4: "https://d.example",
		})

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("navigation failures are aggregated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		navErr := errors.New("destroyed")

		child := newSlottedChild(ctrl, "main1", entity.SlotTopLeft, true)
		child.EXPECT().Navigate(gomock.Any(), "x").Return(navErr)
		registry.EXPECT().Children(port.MainWindowLabel).Return([]port.ChildView{child})

		n, err := usecase.NewApplyQuadURLsUseCase(registry).Execute(context.Background(), port.MainWindowLabel, entity.QuadURLs{URL1: "x"})

		assert.ErrorIs(t, err, navErr)
		assert.Zero(t, n)
	})
}
