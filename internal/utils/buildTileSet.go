package utils

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"runtime"
	"sync"

	"github.com/nfnt/resize"
	"golang.org/x/sync/semaphore"
)

var sem = semaphore.NewWeighted(int64(runtime.NumCPU()))

// BuildTileSet cuts img into 2^lod x 2^lod PNG tiles of TileSizeInPx and
// hands them to writer
func BuildTileSet(lod uint8, img *image.RGBA, writer TileWriter) error {
	tilesPerRowCol := 1 << lod

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	tileWidth := width / tilesPerRowCol
	tileHeight := height / tilesPerRowCol

	// remaining pixels
	widthRemainder := width % tilesPerRowCol
	heightRemainder := height % tilesPerRowCol

	wg := sync.WaitGroup{}
	errs := make(chan error, tilesPerRowCol*tilesPerRowCol)

	for col := 0; col < tilesPerRowCol; col++ {
		for row := 0; row < tilesPerRowCol; row++ {
			wg.Add(1)
			go func(col int, row int) {
				defer wg.Done()

				// remaining pixels are distributed to the first rows / cols
				x := tileWidth*col + minInt(col, widthRemainder)
				y := tileHeight*row + minInt(row, heightRemainder)
				w := tileWidth
				h := tileHeight
				if col < widthRemainder {
					w++
				}
				if row < heightRemainder {
					h++
				}

				p := bounds.Min.Add(image.Point{x, y})
				rect := image.Rectangle{p, p.Add(image.Point{w, h})}

				data, err := createTile(img, rect)
				if err == nil {
					err = writer.WriteTile(uint(lod), uint(col), uint(row), data)
				}
				if err != nil {
					errs <- err
				}
			}(col, row)
		}
	}

	wg.Wait()
	close(errs)

	return <-errs
}

func createTile(img *image.RGBA, rect image.Rectangle) ([]byte, error) {
	if err := sem.Acquire(context.Background(), 1); err != nil {
		return nil, err
	}
	defer sem.Release(1)

	// images smaller than 2^lod pixels leave some tiles without a single pixel
	var tile image.Image = image.NewRGBA(image.Rect(0, 0, TileSizeInPx, TileSizeInPx))
	if !rect.Empty() {
		tile = resize.Resize(TileSizeInPx, TileSizeInPx, img.SubImage(rect), resize.NearestNeighbor)
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, tile); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
