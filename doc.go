// Package imagine implements the client core of a prompt-to-image
// workflow: enhance a short text prompt into a detailed description with
// a hosted text model, fan out independent image-generation requests for
// the effective prompt, and keep a bounded, disk-persisted gallery of
// past results.
//
// # Core Interfaces
//
// The root package defines two provider contracts:
//
//   - [PromptEnhancer]: expand a raw prompt into a richly detailed one
//   - [ImageGenerator]: render N image variations from a prompt
//
// Backends live under provider/ (google, openai, anthropic). The
// [github.com/spetersoncode/imagine/session] package orchestrates the
// enhance→generate flow and merges results into the
// [github.com/spetersoncode/imagine/history] cache.
//
// # Basic Usage
//
//	gc, err := google.New(ctx, os.Getenv("GOOGLE_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cache := history.New(history.NewFileAdapter(path))
//	sess := session.New(gc, gc, cache)
//	sess.LoadHistory(ctx)
//
//	sess.SetPrompt("a cat in a spacesuit")
//	sess.Enhance(ctx)
//	sess.Generate(ctx, 4)
//
//	for _, img := range sess.State().GeneratedImages {
//	    fmt.Println(img.ID, len(img.URL))
//	}
package imagine
