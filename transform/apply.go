package transform

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pipelined/spiral/pixel"
)

// Result is the output of a single named transform.
type Result struct {
	Name  string
	Image *pixel.Image
}

// ApplyAll runs named transforms concurrently over the same image. Results
// are returned in the order of names. The first failure cancels transforms
// which haven't started yet.
func ApplyAll(ctx context.Context, img *pixel.Image, names ...string) ([]Result, error) {
	transforms := make([]Transform, 0, len(names))
	for _, name := range names {
		t, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}

	results := make([]Result, len(transforms))
	g, ctx := errgroup.WithContext(ctx)
	for i := range transforms {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := transforms[i].Apply(img)
			if err != nil {
				return err
			}
			results[i] = Result{Name: transforms[i].Name, Image: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
