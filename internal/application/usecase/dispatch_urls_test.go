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

func TestDispatchURLsUseCase_Execute(t *testing.T) {
	urls := entity.QuadURLs{URL1: "a", URL2: "b", URL3: "c", URL4: "d"}

	t.Run("emits payload verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emitter := mocks.NewMockEventEmitter(ctrl)
		emitter.EXPECT().Emit(gomock.Any(), port.MainWindowLabel, port.LoadURLsEvent, urls).Return(nil).Times(1)

		err := usecase.NewDispatchURLsUseCase(emitter).Execute(context.Background(), port.MainWindowLabel, urls)

		require.NoError(t, err)
	})

	t.Run("does not validate urls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emitter := mocks.NewMockEventEmitter(ctrl)
		odd := entity.QuadURLs{URL1: "not a url", URL4: "javascript:void(0)"}
		emitter.EXPECT().Emit(gomock.Any(), port.MainWindowLabel, port.LoadURLsEvent, odd).Return(nil)

		err := usecase.NewDispatchURLsUseCase(emitter).Execute(context.Background(), port.MainWindowLabel, odd)

		require.NoError(t, err)
	})

	t.Run("emission failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emitter := mocks.NewMockEventEmitter(ctrl)
		emitErr := errors.New("surface gone")
		emitter.EXPECT().Emit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(emitErr).Times(1)

		err := usecase.NewDispatchURLsUseCase(emitter).Execute(context.Background(), "gone", urls)

		assert.ErrorIs(t, err, emitErr)
	})
}
