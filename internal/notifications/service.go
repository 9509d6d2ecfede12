package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"seasonbrake/internal/config"
)

const userAgent = "seasonbrake/0.1.0"

// Service defines the notification surface exposed to the run driver.
type Service interface {
	// NotifyRunCompleted announces a finished run: how many jobs were
	// transcoded, the last output path, and the next unused episode number.
	NotifyRunCompleted(ctx context.Context, transcoded int, lastOutput string, nextEpisode int) error
	// NotifyError announces a fatal run failure.
	NotifyError(ctx context.Context, err error, contextLabel string) error
}

// NewService builds the configured notification fan-out. With nothing
// configured a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	var services []Service

	if cfg != nil && cfg.Notifications.Bell {
		services = append(services, newBellService(os.Stderr))
	}

	if cfg != nil {
		if topic := strings.TrimSpace(cfg.Notifications.NtfyTopic); topic != "" {
			timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
			if timeout <= 0 {
				timeout = 10 * time.Second
			}
			services = append(services, &ntfyService{
				endpoint: topic,
				client:   &http.Client{Timeout: timeout},
			})
		}
	}

	switch len(services) {
	case 0:
		return noopService{}
	case 1:
		return services[0]
	default:
		return multiService(services)
	}
}

type multiService []Service

func (m multiService) NotifyRunCompleted(ctx context.Context, transcoded int, lastOutput string, nextEpisode int) error {
	var firstErr error
	for _, svc := range m {
		if err := svc.NotifyRunCompleted(ctx, transcoded, lastOutput, nextEpisode); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m multiService) NotifyError(ctx context.Context, cause error, contextLabel string) error {
	var firstErr error
	for _, svc := range m {
		if err := svc.NotifyError(ctx, cause, contextLabel); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// bellService rings the terminal bell, the closest POSIX equivalent of the
// short completion beep attended runs expect. It stays silent when the
// output is not a terminal and on the error path.
type bellService struct {
	out io.Writer
	tty bool
}

func newBellService(out *os.File) *bellService {
	return &bellService{
		out: out,
		tty: isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()),
	}
}

func (b *bellService) NotifyRunCompleted(ctx context.Context, transcoded int, lastOutput string, nextEpisode int) error {
	if !b.tty {
		return nil
	}
	_, err := io.WriteString(b.out, "\a")
	return err
}

func (b *bellService) NotifyError(context.Context, error, string) error {
	return nil
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifyRunCompleted(ctx context.Context, transcoded int, lastOutput string, nextEpisode int) error {
	message := fmt.Sprintf("Season run complete: %d titles transcoded", transcoded)
	if lastOutput != "" {
		message = fmt.Sprintf("%s\nLast output: %s", message, lastOutput)
	}
	message = fmt.Sprintf("%s\nNext episode would be #%d", message, nextEpisode)
	return n.send(ctx, "seasonbrake - Complete", message, "", "seasonbrake", "completed")
}

func (n *ntfyService) NotifyError(ctx context.Context, cause error, contextLabel string) error {
	var builder strings.Builder
	builder.WriteString("Run failed")
	if contextLabel = strings.TrimSpace(contextLabel); contextLabel != "" {
		builder.WriteString(" during ")
		builder.WriteString(contextLabel)
	}
	builder.WriteString(": ")
	if cause != nil {
		builder.WriteString(strings.TrimSpace(cause.Error()))
	} else {
		builder.WriteString("unknown")
	}
	return n.send(ctx, "seasonbrake - Error", builder.String(), "high", "seasonbrake", "error")
}

func (n *ntfyService) send(ctx context.Context, title, message, priority string, tags ...string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if title != "" {
		req.Header.Set("Title", title)
	}
	if len(tags) > 0 {
		req.Header.Set("Tags", strings.Join(tags, ","))
	}
	if priority != "" {
		req.Header.Set("Priority", priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyRunCompleted(context.Context, int, string, int) error { return nil }
func (noopService) NotifyError(context.Context, error, string) error           { return nil }
