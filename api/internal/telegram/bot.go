package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"car-damage-analyzer/api/internal/report"
	"car-damage-analyzer/api/internal/vision"
)

const (
	msgStart = `Send me a photo of the vehicle damage and I will assess it.

Commands:
/engine openai|gemini - choose the analysis engine
/help - usage`

	msgHelp = `How it works:

1. Send a photo of the damaged vehicle
2. The photo is analyzed by the selected vision engine
3. You get the vehicle details, itemized damages with repair actions and cost bands, and a safety verdict

Shoot in good light and keep the damaged area in frame.`

	msgSendPhoto       = "Please send a photo of the vehicle damage."
	msgUnknownCommand  = "Unknown command. Use /help for usage."
	msgUnknownEngine   = "Unknown engine. Use /engine openai or /engine gemini."
	msgProcessing      = "Analyzing the photo..."
	msgProcessingError = "Could not process the photo. Please try another one."

	failureNotice = "Analysis failed. Please try again."
)

type Bot struct {
	api      *tgbotapi.BotAPI
	engines  *vision.Engines
	manager  *vision.Manager
	language string
}

func NewBot(token string, engines *vision.Engines, defaultEngine, language string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	def, err := engines.GetEngine(defaultEngine)
	if err != nil {
		return nil, err
	}

	log.Info().Str("account", api.Self.UserName).Msg("authorized")

	return &Bot{
		api:      api,
		engines:  engines,
		manager:  vision.NewManager(def),
		language: language,
	}, nil
}

func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}
		b.handleMessage(ctx, update.Message)
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch {
	case msg.IsCommand():
		b.handleCommand(msg)
	case len(msg.Photo) > 0:
		b.handlePhoto(ctx, msg)
	default:
		b.send(msg.Chat.ID, msgSendPhoto)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.send(msg.Chat.ID, msgStart)
	case "help":
		b.send(msg.Chat.ID, msgHelp)
	case "engine":
		engine, err := b.engines.GetEngine(msg.CommandArguments())
		if err != nil {
			b.send(msg.Chat.ID, msgUnknownEngine)
			return
		}
		b.manager.Set(msg.Chat.ID, engine)
		b.send(msg.Chat.ID, "Engine switched to "+engine.Name()+".")
	default:
		b.send(msg.Chat.ID, msgUnknownCommand)
	}
}

func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	cid := msg.Chat.ID
	b.send(cid, msgProcessing)

	ph := msg.Photo[len(msg.Photo)-1]
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		b.sendError(cid, err)
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", b.api.Token, file.FilePath)
	img, err := download(url)
	if err != nil {
		b.sendError(cid, err)
		return
	}

	engine := b.manager.Get(cid)
	ctx, cancel := context.WithTimeout(ctx, 180*time.Second)
	defer cancel()

	text, err := engine.Analyze(ctx, img, b.language)
	if err != nil {
		log.Error().Err(err).Str("engine", engine.Name()).Msg("analysis failed")
		text = failureNotice
	}

	b.send(cid, FormatReport(report.Parse(text)))
}

func download(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Error().Err(err).Int64("chat", chatID).Msg("send failed")
	}
}

func (b *Bot) sendError(chatID int64, err error) {
	log.Error().Err(err).Int64("chat", chatID).Msg("photo handling failed")
	b.send(chatID, msgProcessingError)
}
