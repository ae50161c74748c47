package cmd

import (
	"bytes"

	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
)

func formatSceneList(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Type", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.Type, info.Description})
	}

	table.Render()
	return buf.String()
}
