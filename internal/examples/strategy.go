package examples

import (
	"context"
	"fmt"
	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/pattern-hub/config"
	"github.com/reusedev/pattern-hub/internal/modules/storage"
	"github.com/reusedev/pattern-hub/internal/modules/storage/local"
	"github.com/reusedev/pattern-hub/internal/modules/strategy"
)

func strategyConceptual(_ context.Context, env *Env) error {
	c := strategy.NewContext(strategy.SortStrategy{})
	fmt.Fprintln(env.Out, "Client: Strategy is set to normal sorting.")
	before, after := c.DoSomeBusinessLogic([]string{"b", "s", "t", "z", "a"})
	fmt.Fprintf(env.Out, "Context Before: %s\nContext After: %s\n\n", before, after)

	fmt.Fprintln(env.Out, "Client: Strategy is set to reverse sorting.")
	c.SetStrategy(strategy.ReverseStrategy{})
	before, after = c.DoSomeBusinessLogic([]string{"b", "s", "t", "z", "a"})
	fmt.Fprintf(env.Out, "Context Before: %s\nContext After: %s\n", before, after)
	return nil
}

// strategyRealWorld uploads the same file locally and then through the
// configured supplier, if that is something other than local storage.
func strategyRealWorld(ctx context.Context, env *Env) error {
	c := storage.NewContext(local.NewUploader(env.Config.UploadDir))
	if err := printResult(env, c.FileUpload(ctx, "/", "Output.txt", "Hello World")); err != nil {
		return err
	}

	if env.Config.StorageSupplier == config.SupplierLocal {
		return nil
	}
	remote, err := storage.FromConfig(ctx, env.Config)
	if err != nil {
		return err
	}
	c.SetStrategy(remote)
	return printResult(env, c.FileUpload(ctx, "/", "Output.txt", "Hello World"))
}

func printResult(env *Env, result storage.UploadResult) error {
	b, err := jsoniter.Marshal(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Out, string(b))
	return err
}
