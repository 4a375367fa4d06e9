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

func newSlottedChild(ctrl *gomock.Controller, id string, slot entity.Slot, autoResize bool) *mocks.MockChildView {
	child := mocks.NewMockChildView(ctrl)
	child.EXPECT().ID().Return(id).AnyTimes()
	child.EXPECT().Slot().Return(slot).AnyTimes()
	child.EXPECT().AutoResize().Return(autoResize).AnyTimes()
	return child
}

func TestRelayoutQuadrantsUseCase_Execute(t *testing.T) {
	t.Run("moves children to their slot rectangles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)

		size := entity.Size{Width: 1000, Height: 800}
		gapped := entity.ComputeQuadrantsWithGap(size, 4)
		flush := entity.ComputeQuadrants(size)

		provisioned := newSlottedChild(ctrl, "webview2", entity.SlotTopRight, false)
		direct := newSlottedChild(ctrl, "main4", entity.SlotBottomRight, true)
		provisioned.EXPECT().SetBounds(gomock.Any(), gapped[entity.SlotTopRight]).Return(nil)
		direct.EXPECT().SetBounds(gomock.Any(), flush[entity.SlotBottomRight]).Return(nil)

		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)
		registry.EXPECT().Children(port.MainWindowLabel).Return([]port.ChildView{provisioned, direct})

		out, err := usecase.NewRelayoutQuadrantsUseCase(registry).Execute(context.Background(), usecase.RelayoutInput{
			Size: size,
			Gap:  4,
		})

		require.NoError(t, err)
		assert.Equal(t, 2, out.Moved)
	})

	t.Run("fills a missing axis from the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)
		host.EXPECT().Size().Return(entity.Size{Width: 400, Height: 600})

		child := newSlottedChild(ctrl, "main4", entity.SlotBottomRight, true)
		child.EXPECT().SetBounds(gomock.Any(), entity.Rect{X: 400, Y: 300, Width: 400, Height: 300}).Return(nil)

		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)
		registry.EXPECT().Children(port.MainWindowLabel).Return([]port.ChildView{child})

		out, err := usecase.NewRelayoutQuadrantsUseCase(registry).Execute(context.Background(), usecase.RelayoutInput{
			Size: entity.Size{Width: 800},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, out.Moved)
	})

	t.Run("uses window size when none given", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)
		host.EXPECT().Size().Return(entity.Size{Width: 400, Height: 200})

		child := newSlottedChild(ctrl, "main1", entity.SlotTopLeft, true)
		child.EXPECT().SetBounds(gomock.Any(), entity.Rect{X: 0, Y: 0, Width: 200, Height: 100}).Return(nil)

		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)
		registry.EXPECT().Children(port.MainWindowLabel).Return([]port.ChildView{child})

		out, err := usecase.NewRelayoutQuadrantsUseCase(registry).Execute(context.Background(), usecase.RelayoutInput{})

		require.NoError(t, err)
		assert.Equal(t, 1, out.Moved)
	})

	t.Run("collects failures and skips unslotted children", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)
		moveErr := errors.New("widget gone")

		broken := newSlottedChild(ctrl, "webview1", entity.SlotTopLeft, false)
		broken.EXPECT().SetBounds(gomock.Any(), gomock.Any()).Return(moveErr)
		stray := newSlottedChild(ctrl, "stray", entity.Slot(7), false)
		ok := newSlottedChild(ctrl, "webview3", entity.SlotBottomLeft, false)
		ok.EXPECT().SetBounds(gomock.Any(), gomock.Any()).Return(nil)

		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)
		registry.EXPECT().Children(port.MainWindowLabel).Return([]port.ChildView{broken, stray, ok})

		out, err := usecase.NewRelayoutQuadrantsUseCase(registry).Execute(context.Background(), usecase.RelayoutInput{
			Size: entity.Size{Width: 100, Height: 100},
		})

		assert.ErrorIs(t, err, moveErr)
		assert.Equal(t, 1, out.Moved)
	})

	t.Run("missing window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		registry.EXPECT().Window("other").Return(nil, false)

		_, err := usecase.NewRelayoutQuadrantsUseCase(registry).Execute(context.Background(), usecase.RelayoutInput{WindowLabel: "other"})

		assert.ErrorIs(t, err, usecase.ErrMainWindowNotFound)
	})
}
