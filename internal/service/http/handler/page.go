package handler

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
)

type labelOption struct {
	ID       string
	Name     string
	Selected bool
}

// Index renders the form. A failed label scan still renders the page.
func Index(c *gin.Context) {
	state := studio.State(sessionID(c))
	labels, err := studio.Labels(c.Request.Context())
	labelError := ""
	if err != nil {
		logs.Logger.Err(err).Msg("scan labels")
		labelError = "Error retrieving labels."
	}
	selected := make(map[string]bool, len(state.SelectedLabels))
	for _, id := range state.SelectedLabels {
		selected[id] = true
	}
	options := make([]labelOption, 0, len(labels))
	for id, name := range labels {
		options = append(options, labelOption{ID: id, Name: name, Selected: selected[id]})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Name < options[j].Name })

	c.HTML(http.StatusOK, "index.html", gin.H{
		"State":      state.View(),
		"Labels":     options,
		"LabelError": labelError,
		"Dimensions": consts.DimensionOptions,
		"Styles":     consts.StylePresets,
		"Modes":      []consts.OutpaintingMode{consts.OutpaintingDefault, consts.OutpaintingPrecise},
	})
}
