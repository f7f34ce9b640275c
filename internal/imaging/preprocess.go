package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	// Register the formats the upload endpoint accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// ErrDecode is returned when the uploaded payload is not a decodable image
var ErrDecode = errors.New("unreadable image payload")

// Input dimensions every classifier was trained on.
const (
	inputWidth    = 224
	inputHeight   = 224
	inputChannels = 3
)

// Tensor is a preprocessed image ready for classification: RGB scaled to
// [0,1], row-major, batch of one.
type Tensor struct {
	Data   []float32
	Width  int
	Height int
}

// Shape returns the tensor shape in NHWC order
func (t Tensor) Shape() []int {
	return []int{1, t.Height, t.Width, inputChannels}
}

// Preprocess decodes raw image bytes and converts them into the fixed-size
// normalized tensor the classifiers expect.
func Preprocess(data []byte) (Tensor, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Tensor{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	// Bilinear resize to the model input size, dropping alpha.
	resized := image.NewRGBA(image.Rect(0, 0, inputWidth, inputHeight))
	xdraw.BiLinear.Scale(resized, resized.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	tensor := Tensor{
		Data:   make([]float32, 0, inputWidth*inputHeight*inputChannels),
		Width:  inputWidth,
		Height: inputHeight,
	}
	for y := 0; y < inputHeight; y++ {
		for x := 0; x < inputWidth; x++ {
			c := color.RGBAModel.Convert(resized.At(x, y)).(color.RGBA)
			tensor.Data = append(tensor.Data,
				float32(c.R)/255.0,
				float32(c.G)/255.0,
				float32(c.B)/255.0,
			)
		}
	}
	return tensor, nil
}
