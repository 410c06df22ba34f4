package client

import (
	"github.com/Jakeb65/WelnessTracker/models"
	"github.com/Jakeb65/WelnessTracker/utils"
)

// AttachPhoto runs the capture-side brightness check and, if the photo
// passes, attaches its path and rounded brightness to the entry payload.
//
// A photo below the threshold is discarded and ErrPhotoTooDark returned
// so the caller can prompt for a retake. If the estimate itself fails
// the photo is still attached, just without a brightness value.
func AttachPhoto(in *models.EntryInput, path string) error {
	brightness, err := utils.EstimateBrightnessFile(path)
	if err != nil {
		in.PhotoURI = &path
		in.PhotoBrightness = nil
		return nil
	}
	if utils.IsTooDark(brightness) {
		in.PhotoURI = nil
		in.PhotoBrightness = nil
		return ErrPhotoTooDark
	}
	in.PhotoURI = &path
	in.PhotoBrightness = &brightness
	return nil
}
