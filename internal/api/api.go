// Package api serves the inspection API: registry snapshots, layout
// previews, and configuration updates. Reads come from the bus-fed
// State; mutations are injected into the host's event loop.
package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/mosswm/mosswm/internal/app"
	"github.com/mosswm/mosswm/internal/build"
	"github.com/mosswm/mosswm/internal/bus"
	"github.com/mosswm/mosswm/internal/config"
	"github.com/mosswm/mosswm/internal/core"
	"github.com/mosswm/mosswm/internal/layout"
	"github.com/mosswm/mosswm/internal/wm"
	"github.com/mosswm/mosswm/internal/xwm"
	"github.com/mosswm/mosswm/pkg/chiext"
)

type Inject func(msg xwm.Msg)

func New(state *State, store config.Store, inject Inject) http.Handler {
	router := chi.NewMux()
	router.Use(chiext.Logger())

	router.Get("/api/events", events(bus.NewHub[bus.LayoutApplied]().Register()))

	humaAPI := humachi.New(router, huma.DefaultConfig("mosswm", build.Current.Version))
	register(humaAPI, state, store, inject)

	return router
}

type windowsOutput struct {
	Body struct {
		Windows []wm.Window `json:"windows"`
	}
}

type layoutOutput struct {
	Body struct {
		Generation string           `json:"generation"`
		Screen     layout.Rect      `json:"screen"`
		Commands   []layout.Command `json:"commands"`
	}
}

type configOutput struct {
	Body config.Config
}

type debugOutput struct {
	Body struct {
		Dump string `json:"dump"`
	}
}

type emptyOutput struct{}

func register(humaAPI huma.API, state *State, store config.Store, inject Inject) {
	huma.Get(humaAPI, "/api/windows", func(ctx context.Context, input *struct{}) (*windowsOutput, error) {
		out := &windowsOutput{}
		out.Body.Windows = state.Windows()
		return out, nil
	})

	huma.Get(humaAPI, "/api/layout", func(ctx context.Context, input *struct{}) (*layoutOutput, error) {
		out := &layoutOutput{}
		out.Body.Generation, out.Body.Screen, out.Body.Commands = state.LastLayout()
		return out, nil
	})

	huma.Get(humaAPI, "/api/config", func(ctx context.Context, input *struct{}) (*configOutput, error) {
		cfg, err := store.GetConfig()
		if err != nil {
			return nil, err
		}
		return &configOutput{Body: cfg}, nil
	})

	huma.Put(humaAPI, "/api/layout/config", func(ctx context.Context, input *struct {
		Body struct {
			Gaps        *float64 `json:"gaps,omitempty"`
			Padding     *float64 `json:"padding,omitempty"`
			MasterRatio *float64 `json:"master_ratio,omitempty"`
		}
	}) (*emptyOutput, error) {
		cfg, err := store.GetConfig()
		if err != nil {
			return nil, err
		}

		inject(app.SetLayoutConfigMsg{
			Gaps:        core.Optional(input.Body.Gaps, cfg.Layout.Gaps),
			Padding:     core.Optional(input.Body.Padding, cfg.Layout.Padding),
			MasterRatio: core.Optional(input.Body.MasterRatio, cfg.Layout.MasterRatio),
		})

		return &emptyOutput{}, nil
	})

	huma.Post(humaAPI, "/api/windows/{id}/front", func(ctx context.Context, input *struct {
		ID uint64 `path:"id"`
	}) (*emptyOutput, error) {
		inject(app.MoveToFrontMsg{ID: input.ID})
		return &emptyOutput{}, nil
	})

	huma.Post(humaAPI, "/api/windows/{id}/floating", func(ctx context.Context, input *struct {
		ID   uint64 `path:"id"`
		Body struct {
			Floating bool `json:"floating"`
		}
	}) (*emptyOutput, error) {
		inject(app.SetFloatingMsg{ID: input.ID, Floating: input.Body.Floating})
		return &emptyOutput{}, nil
	})

	huma.Post(humaAPI, "/api/windows/swap", func(ctx context.Context, input *struct {
		Body struct {
			I int `json:"i"`
			J int `json:"j"`
		}
	}) (*emptyOutput, error) {
		inject(app.SwapMsg{I: input.Body.I, J: input.Body.J})
		return &emptyOutput{}, nil
	})

	huma.Get(humaAPI, "/api/debug", func(ctx context.Context, input *struct{}) (*debugOutput, error) {
		out := &debugOutput{}
		out.Body.Dump = state.Dump()
		return out, nil
	})
}
