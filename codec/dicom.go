package codec

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
)

// FrameDescriptorFromDICOM maps DICOM frame metadata onto a FrameDescriptor.
// BitsStored determines the sample range; BitsAllocated only selects the
// container width and is not carried over.
func FrameDescriptorFromDICOM(info *imagetypes.FrameInfo) (FrameDescriptor, error) {
	if info == nil {
		return FrameDescriptor{}, fmt.Errorf("%w: nil frame info", ErrInvalidParameter)
	}

	frame := FrameDescriptor{
		Width:          int(info.Width),
		Height:         int(info.Height),
		BitsPerSample:  int(info.BitsStored),
		ComponentCount: int(info.SamplesPerPixel),
	}
	if err := frame.Validate(); err != nil {
		return FrameDescriptor{}, err
	}
	return frame, nil
}
