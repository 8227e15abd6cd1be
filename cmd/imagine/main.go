// Command imagine is a terminal front end for the prompt-to-image
// session: it optionally enhances a prompt, renders variations, writes
// the decoded images to disk, and keeps the persisted gallery.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spetersoncode/imagine"
	"github.com/spetersoncode/imagine/history"
	"github.com/spetersoncode/imagine/provider/anthropic"
	"github.com/spetersoncode/imagine/provider/google"
	"github.com/spetersoncode/imagine/provider/openai"
	"github.com/spetersoncode/imagine/session"
)

// stringList collects repeatable flag values.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	cfg := LoadConfig()

	var refs stringList
	prompt := flag.String("prompt", "", "prompt text to render")
	style := flag.String("style", "", "visual style (e.g. Photorealistic, Anime)")
	ratio := flag.String("ar", imagine.DefaultAspectRatio, "aspect ratio (1:1, 3:4, 4:3, 9:16, 16:9)")
	count := flag.Int("count", cfg.Count, "number of variations to request")
	enhance := flag.Bool("enhance", false, "enhance the prompt before generating")
	clear := flag.Bool("clear-history", false, "delete the saved gallery and exit")
	list := flag.Bool("list", false, "print the saved gallery and exit")
	output := flag.String("output", cfg.OutputDir, "directory for decoded images")
	flag.Var(&refs, "ref", "reference image file (repeatable, up to 4)")
	flag.Parse()

	ctx := context.Background()
	cache := history.New(history.NewFileAdapter(cfg.HistoryPath))

	enhancer, generator, err := buildProviders(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	sess := session.New(enhancer, generator, cache)
	sess.LoadHistory(ctx)

	if *clear {
		if !confirm("This will remove all saved generations. Continue?") {
			return
		}
		sess.ClearHistory(ctx)
		fmt.Println("History cleared.")
		return
	}

	if *list {
		printGallery(sess.State().GeneratedImages)
		return
	}

	if *prompt == "" && len(refs) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	attachReferences(sess, refs)
	sess.SetPrompt(*prompt)
	sess.SetStyle(*style)
	sess.SetAspectRatio(*ratio)

	if *enhance {
		fmt.Println("Enhancing prompt...")
		if err := sess.Enhance(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "error:", sess.State().Error)
			os.Exit(1)
		}
		fmt.Println(sess.State().EnhancedPrompt)
		fmt.Println()
	}

	before := len(sess.State().GeneratedImages)
	fmt.Printf("Generating %d variation(s)...\n", *count)
	if err := sess.Generate(ctx, *count); err != nil {
		fmt.Fprintln(os.Stderr, "error:", sess.State().Error)
		os.Exit(1)
	}

	state := sess.State()
	batch := state.GeneratedImages[:len(state.GeneratedImages)-before]
	if err := writeImages(*output, batch); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}

	cache.Flush(ctx)
	printGallery(state.GeneratedImages)
}

// buildProviders wires the configured enhancement and generation
// backends.
func buildProviders(ctx context.Context, cfg *Config) (imagine.PromptEnhancer, imagine.ImageGenerator, error) {
	var generator imagine.ImageGenerator
	var googleClient *google.Client

	switch cfg.Provider {
	case "google":
		gc, err := google.New(ctx, cfg.GoogleKey)
		if err != nil {
			return nil, nil, err
		}
		googleClient = gc
		generator = gc
	case "openai":
		oc, err := openai.New(cfg.OpenAIKey)
		if err != nil {
			return nil, nil, err
		}
		generator = oc
	default:
		return nil, nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	var enhancer imagine.PromptEnhancer
	switch cfg.Enhancer {
	case "google":
		if googleClient == nil {
			gc, err := google.New(ctx, cfg.GoogleKey)
			if err != nil {
				return nil, nil, err
			}
			googleClient = gc
		}
		enhancer = googleClient
	case "openai":
		oc, err := openai.New(cfg.OpenAIKey)
		if err != nil {
			return nil, nil, err
		}
		enhancer = oc
	case "anthropic":
		ac, err := anthropic.New(cfg.AnthropicKey)
		if err != nil {
			return nil, nil, err
		}
		enhancer = ac
	default:
		return nil, nil, fmt.Errorf("unknown enhancer %q", cfg.Enhancer)
	}

	return enhancer, generator, nil
}

// attachReferences loads reference image files into the session store.
// Files past the store's cap are reported and skipped.
func attachReferences(sess *session.Session, paths []string) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping reference %s: %v\n", path, err)
			continue
		}
		mimeType := http.DetectContentType(data)
		if !strings.HasPrefix(mimeType, "image/") {
			fmt.Fprintf(os.Stderr, "skipping reference %s: not an image (%s)\n", path, mimeType)
			continue
		}
		added := sess.References().Add(imagine.ReferenceFile{Data: data, MimeType: mimeType})
		if len(added) == 0 {
			fmt.Fprintf(os.Stderr, "skipping reference %s: at most %d images\n", path, imagine.MaxReferenceImages)
		}
	}
}

// writeImages decodes data-URI results and writes them into dir.
// Remote URLs are printed instead of fetched.
func writeImages(dir string, images []imagine.GeneratedImage) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for i, img := range images {
		data, mimeType, err := imagine.DecodeDataURI(img.URL)
		if err != nil {
			fmt.Printf("  [%d] %s\n", i+1, img.URL)
			continue
		}
		name := fmt.Sprintf("imagine-%d-%d%s", img.Timestamp, i+1, extensionFor(mimeType))
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  saved", path)
	}
	return nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// printGallery lists the gallery newest-first.
func printGallery(images []imagine.GeneratedImage) {
	if len(images) == 0 {
		fmt.Println("No generations yet.")
		return
	}
	fmt.Printf("\nGallery (%d):\n", len(images))
	for _, img := range images {
		ts := time.UnixMilli(img.Timestamp).Format("2006-01-02 15:04:05")
		prompt := img.Prompt
		if len(prompt) > 60 {
			prompt = prompt[:57] + "..."
		}
		id := img.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %s  %s  %s\n", id, ts, prompt)
	}
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
