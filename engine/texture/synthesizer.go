package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/graphics"
)

// ErrUnknownPattern is returned for a Request with a Pattern outside the known set.
var ErrUnknownPattern = errors.New("unknown texture pattern")

// synthesizer is the implementation of the Synthesizer interface.
type synthesizer struct {
	ctx     graphics.Context
	workers int
	pool    worker.DynamicWorkerPool

	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
}

// Synthesizer draws small pattern and text images on the CPU and uploads them as 2D textures.
// Rasterize and RasterizeBatch are safe for concurrent use; every method that touches the graphics context
// must be called from the goroutine owning it.
type Synthesizer interface {
	// Checker creates a checkerboard texture, 2x2 by default.
	//
	// Parameters:
	//   - options: size and color options
	//
	// Returns:
	//   - graphics.Texture: the texture
	//   - error: error if the image could not be rasterized
	Checker(options ...TextureOption) (graphics.Texture, error)

	// Stripe creates a two band texture, 2x2 by default.
	//
	// Parameters:
	//   - options: size and color options
	//
	// Returns:
	//   - graphics.Texture: the texture
	//   - error: error if the image could not be rasterized
	Stripe(options ...TextureOption) (graphics.Texture, error)

	// Circle creates a ring texture, 128x128 by default.
	//
	// Parameters:
	//   - options: size and color options
	//
	// Returns:
	//   - graphics.Texture: the texture
	//   - error: error if the image could not be rasterized
	Circle(options ...TextureOption) (graphics.Texture, error)

	// Text creates a texture with s centered on a transparent background, 128x32 at 28 points by default.
	//
	// Parameters:
	//   - s: the text
	//   - options: size, color and font size options
	//
	// Returns:
	//   - graphics.Texture: the texture
	//   - error: error if the font could not be loaded or the image could not be rasterized
	Text(s string, options ...TextureOption) (graphics.Texture, error)

	// Synthesize rasterizes every request on the worker pool, then uploads the images in request order.
	// Nothing is uploaded when any request fails.
	//
	// Parameters:
	//   - requests: the textures to create
	//
	// Returns:
	//   - []graphics.Texture: one texture per request
	//   - error: the joined rasterization errors
	Synthesize(requests ...Request) ([]graphics.Texture, error)

	// Rasterize draws one request without touching the graphics context.
	//
	// Parameters:
	//   - req: the request
	//
	// Returns:
	//   - *image.RGBA: the image
	//   - error: ErrUnknownPattern, a font error or a fill error
	Rasterize(req Request) (*image.RGBA, error)

	// RasterizeBatch draws requests concurrently on the worker pool.
	//
	// Parameters:
	//   - requests: the requests
	//
	// Returns:
	//   - []*image.RGBA: the images in request order, nil where a request failed
	//   - error: the joined errors, each naming its request index
	RasterizeBatch(requests []Request) ([]*image.RGBA, error)

	// Upload creates a 2D texture from img. Text images are sampled linearly and clamped at the edges;
	// pattern images get mipmaps and nearest sampling.
	//
	// Parameters:
	//   - img: the image
	//   - pattern: the pattern the image was drawn with
	//
	// Returns:
	//   - graphics.Texture: the texture
	Upload(img image.Image, pattern Pattern) graphics.Texture

	// Close stops the worker pool.
	Close()
}

var _ Synthesizer = &synthesizer{}

// NewSynthesizer creates a Synthesizer uploading to ctx.
//
// Parameters:
//   - ctx: the graphics context
//   - options: variadic list of SynthesizerBuilderOption functions to configure the Synthesizer
//
// Returns:
//   - Synthesizer: the synthesizer
func NewSynthesizer(ctx graphics.Context, options ...SynthesizerBuilderOption) Synthesizer {
	s := &synthesizer{
		ctx:     ctx,
		workers: 4,
	}
	for _, option := range options {
		option(s)
	}
	s.pool = worker.NewDynamicWorkerPool(s.workers, 256, time.Second)
	return s
}

func (s *synthesizer) Checker(options ...TextureOption) (graphics.Texture, error) {
	return s.create(Request{Pattern: PatternChecker}, options)
}

func (s *synthesizer) Stripe(options ...TextureOption) (graphics.Texture, error) {
	return s.create(Request{Pattern: PatternStripe}, options)
}

func (s *synthesizer) Circle(options ...TextureOption) (graphics.Texture, error) {
	return s.create(Request{Pattern: PatternCircle}, options)
}

func (s *synthesizer) Text(str string, options ...TextureOption) (graphics.Texture, error) {
	return s.create(Request{Pattern: PatternText, Text: str}, options)
}

func (s *synthesizer) create(req Request, options []TextureOption) (graphics.Texture, error) {
	for _, option := range options {
		option(&req)
	}
	img, err := s.Rasterize(req)
	if err != nil {
		return 0, err
	}
	return s.Upload(img, req.Pattern), nil
}

func (s *synthesizer) Synthesize(requests ...Request) ([]graphics.Texture, error) {
	images, err := s.RasterizeBatch(requests)
	if err != nil {
		return nil, err
	}

	textures := make([]graphics.Texture, len(images))
	for i, img := range images {
		textures[i] = s.Upload(img, requests[i].Pattern)
	}
	return textures, nil
}

func (s *synthesizer) Rasterize(req Request) (*image.RGBA, error) {
	req = req.withDefaults()
	w, h := float64(req.Width), float64(req.Height)

	dc := gg.NewContext(req.Width, req.Height)
	defer dc.Close()

	var err error
	switch req.Pattern {
	case PatternChecker:
		err = errors.Join(
			fill(dc, req.Color1, func() { dc.DrawRectangle(0, 0, w, h) }),
			fill(dc, req.Color2, func() {
				dc.DrawRectangle(0, 0, w/2, h/2)
				dc.DrawRectangle(w/2, h/2, w/2, h/2)
			}),
		)
	case PatternStripe:
		err = errors.Join(
			fill(dc, req.Color1, func() { dc.DrawRectangle(0, 0, w, h) }),
			fill(dc, req.Color2, func() { dc.DrawRectangle(0, 0, w, h/2) }),
		)
	case PatternCircle:
		err = errors.Join(
			fill(dc, req.Color1, func() { dc.DrawRectangle(0, 0, w, h) }),
			fill(dc, req.Color2, func() { dc.DrawCircle(w/2, h/2, w/2-1) }),
			fill(dc, req.Color1, func() { dc.DrawCircle(w/2, h/2, w/4-1) }),
		)
	case PatternText:
		var source *text.FontSource
		if source, err = s.font(); err == nil {
			dc.SetFont(source.Face(req.FontSize))
			dc.SetColor(req.Color1)
			dc.DrawStringAnchored(req.Text, w/2, h/2, 0.5, 0.5)
		}
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownPattern, req.Pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize %s texture: %w", req.Pattern, err)
	}

	return toRGBA(dc.Image()), nil
}

func fill(dc *gg.Context, c color.Color, path func()) error {
	dc.SetColor(c)
	path()
	return dc.Fill()
}

func (s *synthesizer) font() (*text.FontSource, error) {
	s.fontOnce.Do(func() {
		if s.fontSource != nil {
			return
		}
		s.fontSource, s.fontErr = text.NewFontSource(goregular.TTF)
	})
	return s.fontSource, s.fontErr
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

func (s *synthesizer) RasterizeBatch(requests []Request) ([]*image.RGBA, error) {
	images := make([]*image.RGBA, len(requests))
	errs := make([]error, len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		s.pool.SubmitTask(worker.Task{
			ID:      i,
			Payload: req,
			Do: func() (any, error) {
				defer wg.Done()
				img, err := s.Rasterize(req)
				if err != nil {
					err = fmt.Errorf("request %d: %w", i, err)
					common.Logger().Warn("texture rasterization failed", "index", i, "pattern", req.Pattern.String(), "error", err)
				}
				images[i], errs[i] = img, err
				return img, err
			},
		})
	}
	wg.Wait()

	return images, errors.Join(errs...)
}

func (s *synthesizer) Upload(img image.Image, pattern Pattern) graphics.Texture {
	staging := common.StagingFromImage(img)

	tex := s.ctx.CreateTexture()
	s.ctx.BindTexture(graphics.TextureTarget2D, tex)
	s.ctx.TexImage2D(graphics.TextureTarget2D, staging.Width, staging.Height, staging.Pixels)

	if pattern == PatternText {
		s.ctx.TexParameter(graphics.TextureTarget2D, graphics.TextureParameterMinFilter, graphics.TextureValueLinear)
		s.ctx.TexParameter(graphics.TextureTarget2D, graphics.TextureParameterWrapS, graphics.TextureValueClampToEdge)
		s.ctx.TexParameter(graphics.TextureTarget2D, graphics.TextureParameterWrapT, graphics.TextureValueClampToEdge)
	} else {
		s.ctx.GenerateMipmap(graphics.TextureTarget2D)
		s.ctx.TexParameter(graphics.TextureTarget2D, graphics.TextureParameterMinFilter, graphics.TextureValueNearest)
		s.ctx.TexParameter(graphics.TextureTarget2D, graphics.TextureParameterMagFilter, graphics.TextureValueNearest)
	}

	common.Logger().Debug("texture uploaded", "pattern", pattern.String(), "width", staging.Width, "height", staging.Height)
	return tex
}

func (s *synthesizer) Close() {
	s.pool.Stop()
}
