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
	"github.com/bnema/quadchat/internal/infrastructure/registry"
)

func reportedPositions(n int) []entity.QuadrantPosition {
	positions := make([]entity.QuadrantPosition, 0, n)
	for i := 0; i < n; i++ {
		positions = append(positions, entity.QuadrantPosition{
			ID:     entity.QuadrantID(entity.Slot(i % entity.QuadrantCount)),
			X:      float64(i*10) + 0.5,
			Y:      float64(i * 20),
			Width:  598,
			Height: 448 - float64(i),
		})
	}
	return positions
}

// expectChildren makes host create a child for every AddChild call and
// records the specs it received.
func expectChildren(ctrl *gomock.Controller, host *mocks.MockHostWindow, specs *[]port.ChildViewSpec) *gomock.Call {
	return host.EXPECT().AddChild(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec port.ChildViewSpec) (port.ChildView, error) {
			*specs = append(*specs, spec)
			child := mocks.NewMockChildView(ctrl)
			child.EXPECT().ID().Return(spec.ID).AnyTimes()
			child.EXPECT().Bounds().Return(spec.Bounds).AnyTimes()
			return child, nil
		})
}

func TestProvisionWebViewsUseCase_Execute(t *testing.T) {
	t.Run("creates one view per position with matching bounds", func(t *testing.T) {
		// Arrange
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)
		host.EXPECT().Label().Return(port.MainWindowLabel).AnyTimes()
		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)
		registry.EXPECT().Child(port.MainWindowLabel, gomock.Any()).Return(nil, false).AnyTimes()
		registry.EXPECT().RegisterChild(port.MainWindowLabel, gomock.Any()).Return(nil).Times(4)

		var specs []port.ChildViewSpec
		expectChildren(ctrl, host, &specs).Times(4)

		positions := reportedPositions(4)
		uc := usecase.NewProvisionWebViewsUseCase(registry)

		// Act
		out, err := uc.Execute(context.Background(), positions)

		// Assert
		require.NoError(t, err)
		require.Len(t, out.Created, 4)
		assert.Nil(t, out.Failures)
		require.Len(t, specs, 4)
		for i, spec := range specs {
			assert.Equal(t, positions[i].Rect(), spec.Bounds)
			assert.Equal(t, positions[i].Rect(), out.Created[i].Bounds())
			assert.Equal(t, entity.ProvisionTargets[i].URL, spec.URL)
			assert.Equal(t, entity.ProvisionTargets[i].Title, spec.Title)
			assert.Equal(t, entity.ProvisionedViewID(i), spec.ID)
			assert.False(t, spec.Decorated)
			assert.True(t, spec.AlwaysOnTop)
		}
	})

	t.Run("ignores positions beyond the fourth", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)
		host.EXPECT().Label().Return(port.MainWindowLabel).AnyTimes()
		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)
		registry.EXPECT().Child(port.MainWindowLabel, gomock.Any()).Return(nil, false).AnyTimes()
		registry.EXPECT().RegisterChild(port.MainWindowLabel, gomock.Any()).Return(nil).Times(4)

		var specs []port.ChildViewSpec
		expectChildren(ctrl, host, &specs).Times(4)

		positions := reportedPositions(7)
		out, err := usecase.NewProvisionWebViewsUseCase(registry).Execute(context.Background(), positions)

		require.NoError(t, err)
		assert.Len(t, out.Created, 4)
		require.Len(t, specs, 4)
		assert.Equal(t, positions[3].Rect(), specs[3].Bounds)
	})

	t.Run("fewer positions create fewer views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)
		host.EXPECT().Label().Return(port.MainWindowLabel).AnyTimes()
		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)
		registry.EXPECT().Child(port.MainWindowLabel, gomock.Any()).Return(nil, false).AnyTimes()
		registry.EXPECT().RegisterChild(port.MainWindowLabel, gomock.Any()).Return(nil).Times(2)

		var specs []port.ChildViewSpec
		expectChildren(ctrl, host, &specs).Times(2)

		out, err := usecase.NewProvisionWebViewsUseCase(registry).Execute(context.Background(), reportedPositions(2))

		require.NoError(t, err)
		assert.Len(t, out.Created, 2)
		assert.Equal(t, "ChatGPT", specs[1].Title)
	})

	t.Run("zero positions succeed with zero views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)
		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)
		registry.EXPECT().Child(port.MainWindowLabel, gomock.Any()).Return(nil, false).AnyTimes()

		out, err := usecase.NewProvisionWebViewsUseCase(registry).Execute(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, out.Created)
		assert.Nil(t, out.Failures)
	})

	t.Run("missing main window returns error and creates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		registry.EXPECT().Window(port.MainWindowLabel).Return(nil, false)

		out, err := usecase.NewProvisionWebViewsUseCase(registry).Execute(context.Background(), reportedPositions(4))

		assert.ErrorIs(t, err, usecase.ErrMainWindowNotFound)
		assert.Nil(t, out)
	})

	t.Run("individual failures do not abort the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)
		host.EXPECT().Label().Return(port.MainWindowLabel).AnyTimes()
		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)
		registry.EXPECT().Child(port.MainWindowLabel, gomock.Any()).Return(nil, false).AnyTimes()
		registry.EXPECT().RegisterChild(port.MainWindowLabel, gomock.Any()).Return(nil).Times(3)

		createErr := errors.New("webkit refused")
		host.EXPECT().AddChild(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, spec port.ChildViewSpec) (port.ChildView, error) {
				if spec.ID == "webview2" {
					return nil, createErr
				}
				child := mocks.NewMockChildView(ctrl)
				child.EXPECT().ID().Return(spec.ID).AnyTimes()
				return child, nil
			}).Times(4)

		out, err := usecase.NewProvisionWebViewsUseCase(registry).Execute(context.Background(), reportedPositions(4))

		require.NoError(t, err)
		require.Len(t, out.Created, 3)
		assert.Equal(t, "webview3", out.Created[1].ID())
		require.NotNil(t, out.Failures)
		assert.Len(t, out.Failures.Errors, 1)
		assert.ErrorIs(t, out.Failures, createErr)
		assert.Contains(t, out.Failures.Error(), "ChatGPT")
	})

	t.Run("registration failure counts as a failed view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)
		host.EXPECT().Label().Return(port.MainWindowLabel).AnyTimes()
		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)
		registry.EXPECT().Child(port.MainWindowLabel, gomock.Any()).Return(nil, false).AnyTimes()
		registry.EXPECT().RegisterChild(port.MainWindowLabel, gomock.Any()).Return(errors.New("duplicate"))
		host.EXPECT().RemoveChild(gomock.Any(), "webview1").Return(nil)

		var specs []port.ChildViewSpec
		expectChildren(ctrl, host, &specs).Times(1)

		out, err := usecase.NewProvisionWebViewsUseCase(registry).Execute(context.Background(), reportedPositions(1))

		require.NoError(t, err)
		assert.Empty(t, out.Created)
		require.NotNil(t, out.Failures)
		assert.Len(t, out.Failures.Errors, 1)
	})

	t.Run("registration and removal failures are both reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)
		host.EXPECT().Label().Return(port.MainWindowLabel).AnyTimes()
		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)
		registry.EXPECT().Child(port.MainWindowLabel, gomock.Any()).Return(nil, false).AnyTimes()

		registerErr := errors.New("duplicate")
		removeErr := errors.New("widget gone")
		registry.EXPECT().RegisterChild(port.MainWindowLabel, gomock.Any()).Return(registerErr)
		host.EXPECT().RemoveChild(gomock.Any(), "webview1").Return(removeErr)

		var specs []port.ChildViewSpec
		expectChildren(ctrl, host, &specs).Times(1)

		out, err := usecase.NewProvisionWebViewsUseCase(registry).Execute(context.Background(), reportedPositions(1))

		require.NoError(t, err)
		require.NotNil(t, out.Failures)
		assert.ErrorIs(t, out.Failures, registerErr)
		assert.ErrorIs(t, out.Failures, removeErr)
	})

	t.Run("already provisioned views are moved, not recreated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		registry := mocks.NewMockViewRegistry(ctrl)
		host := mocks.NewMockHostWindow(ctrl)
		host.EXPECT().Label().Return(port.MainWindowLabel).AnyTimes()
		registry.EXPECT().Window(port.MainWindowLabel).Return(host, true)

		positions := reportedPositions(1)
		existing := mocks.NewMockChildView(ctrl)
		existing.EXPECT().SetBounds(gomock.Any(), positions[0].Rect()).Return(nil)
		registry.EXPECT().Child(port.MainWindowLabel, "webview1").Return(existing, true)

		out, err := usecase.NewProvisionWebViewsUseCase(registry).Execute(context.Background(), positions)

		require.NoError(t, err)
		assert.Empty(t, out.Created)
		require.Len(t, out.Existing, 1)
		assert.Same(t, existing, out.Existing[0])
		assert.Nil(t, out.Failures)
	})
}

// layerHost is a HostWindow that tracks which children are attached to it.
type layerHost struct {
	attached map[string]port.ChildView
	added    int
}

func newLayerHost() *layerHost {
	return &layerHost{attached: make(map[string]port.ChildView)}
}

func (h *layerHost) Label() string                                    { return port.MainWindowLabel }
func (h *layerHost) Size() entity.Size                                { return entity.Size{Width: 1200, Height: 900} }
func (h *layerHost) EvaluateScript(context.Context, string) error     { return nil }
func (h *layerHost) DispatchEvent(context.Context, string, any) error { return nil }

func (h *layerHost) AddChild(_ context.Context, spec port.ChildViewSpec) (port.ChildView, error) {
	h.added++
	child := &layerChild{spec: spec}
	h.attached[spec.ID] = child
	return child, nil
}

func (h *layerHost) RemoveChild(_ context.Context, id string) error {
	delete(h.attached, id)
	return nil
}

type layerChild struct {
	spec port.ChildViewSpec
}

func (c *layerChild) ID() string          { return c.spec.ID }
func (c *layerChild) Title() string       { return c.spec.Title }
func (c *layerChild) URL() string         { return c.spec.URL }
func (c *layerChild) Slot() entity.Slot   { return c.spec.Slot }
func (c *layerChild) Bounds() entity.Rect { return c.spec.Bounds }
func (c *layerChild) AutoResize() bool    { return c.spec.AutoResize }

func (c *layerChild) SetBounds(_ context.Context, rect entity.Rect) error {
	c.spec.Bounds = rect
	return nil
}

func (c *layerChild) Navigate(_ context.Context, url string) error {
	c.spec.URL = url
	return nil
}

func TestProvisionWebViewsUseCase_RepeatedReports(t *testing.T) {
	reg := registry.New()
	host := newLayerHost()
	require.NoError(t, reg.RegisterWindow(host))
	uc := usecase.NewProvisionWebViewsUseCase(reg)

	first, err := uc.Execute(context.Background(), reportedPositions(4))
	require.NoError(t, err)
	require.Len(t, first.Created, 4)

	moved := reportedPositions(4)
	for i := range moved {
		moved[i].Y += 100
	}
	second, err := uc.Execute(context.Background(), moved)

	require.NoError(t, err)
	assert.Empty(t, second.Created)
	assert.Len(t, second.Existing, 4)
	assert.Nil(t, second.Failures)

	assert.Equal(t, 4, host.added)
	assert.Len(t, host.attached, 4)
	children := reg.Children(port.MainWindowLabel)
	require.Len(t, children, 4)
	for i, child := range children {
		assert.Equal(t, moved[i].Rect(), child.Bounds())
	}
}

func TestProvisionWebViewsUseCase_RejectedChildIsDetached(t *testing.T) {
	reg := registry.New()
	host := newLayerHost()
	require.NoError(t, reg.RegisterWindow(host))

	// A view registered out of band under the same id makes registration of
	// the freshly attached one fail.
	ctrl := gomock.NewController(t)
	stale := mocks.NewMockChildView(ctrl)
	stale.EXPECT().ID().Return(entity.ProvisionedViewID(0)).AnyTimes()

	uc := usecase.NewProvisionWebViewsUseCase(&raceRegistry{Registry: reg, stale: stale})
	out, err := uc.Execute(context.Background(), reportedPositions(1))

	require.NoError(t, err)
	assert.Empty(t, out.Created)
	require.NotNil(t, out.Failures)
	assert.Equal(t, 1, host.added)
	assert.Empty(t, host.attached)
}

// raceRegistry registers stale right before the first RegisterChild call.
type raceRegistry struct {
	*registry.Registry
	stale port.ChildView
	raced bool
}

func (r *raceRegistry) RegisterChild(parentLabel string, child port.ChildView) error {
	if !r.raced {
		r.raced = true
		if err := r.Registry.RegisterChild(parentLabel, r.stale); err != nil {
			return err
		}
	}
	return r.Registry.RegisterChild(parentLabel, child)
}
