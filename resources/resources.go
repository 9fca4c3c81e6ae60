// Package resources embeds the application icon and the default rune labels.
package resources

import (
	"embed"

	"fyne.io/fyne/v2"
)

// LabelsDir is the directory of LabelFiles holding the label enumerations.
const LabelsDir = "labels"

//go:embed icons/app_256.png
var iconData []byte

func GetAppIcon() fyne.Resource {
	return &fyne.StaticResource{
		StaticName:    "app_256.png",
		StaticContent: iconData,
	}
}

//go:embed labels/*.yaml
var LabelFiles embed.FS
