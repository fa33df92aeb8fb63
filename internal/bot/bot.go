package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/example/algorecall/internal/adapters"
	"github.com/example/algorecall/internal/database"
	"github.com/example/algorecall/internal/detector"
	"github.com/example/algorecall/internal/schedule"
	"github.com/example/algorecall/internal/scheduler"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// Bot is the Telegram shell around the schedule engine. It only reads state
// through the repositories and funnels every mutation through the engine.
type Bot struct {
	api      *tgbotapi.BotAPI
	token    string
	engine   *schedule.Engine
	problems *database.ProblemRepository
	concepts *database.ConceptRepository
	streak   *database.StreakRepository
	registry *adapters.Registry
	fetcher  *adapters.Fetcher
	reminder *scheduler.Scheduler
	config   *Config

	ctx context.Context

	mu       sync.Mutex
	chats    map[int64]bool                 // chats subscribed to reminders
	watchers map[string]context.CancelFunc  // active page watchers, by canonical id
	pending  map[string]detector.Detection  // detections awaiting confirmation, by ref
	refs     map[string]string              // short callback refs -> problem id
	nextRef  int
}

// New creates a new bot instance over the given engine
func New(engine *schedule.Engine, config *Config) (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	if database.DB == nil {
		return nil, fmt.Errorf("database connection is not established")
	}

	if config == nil {
		config = DefaultConfig()
	}

	return &Bot{
		token:    token,
		engine:   engine,
		problems: database.NewProblemRepository(),
		concepts: database.NewConceptRepository(),
		streak:   database.NewStreakRepository(),
		registry: adapters.Default(),
		fetcher:  adapters.NewFetcher(config.FetchTimeout),
		config:   config,
		chats:    make(map[int64]bool),
		watchers: make(map[string]context.CancelFunc),
		pending:  make(map[string]detector.Detection),
		refs:     make(map[string]string),
	}, nil
}

// Start connects to Telegram and serves updates until ctx is cancelled
func (b *Bot) Start(ctx context.Context) error {
	api, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("unable to create bot: %v", err)
	}
	b.api = api
	b.ctx = ctx
	log.Printf("Authorized on account %s", api.Self.UserName)

	b.reminder = scheduler.New(b)
	b.reminder.Start()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		go b.handleUpdate(update)
	}

	return nil
}

// Stop gracefully stops the bot and all page watchers
func (b *Bot) Stop() {
	if b.reminder != nil {
		b.reminder.Stop()
	}
	b.mu.Lock()
	for _, cancel := range b.watchers {
		cancel()
	}
	b.mu.Unlock()
	log.Println("Bot stopped")
}

// SendDueReminder implements the scheduler.Notifier interface
func (b *Bot) SendDueReminder(count int) error {
	b.mu.Lock()
	chats := make([]int64, 0, len(b.chats))
	for chatID := range b.chats {
		chats = append(chats, chatID)
	}
	b.mu.Unlock()

	text := fmt.Sprintf("You have %d problem(s) due for review! Use /due to start.", count)
	for _, chatID := range chats {
		if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			log.Printf("Error sending reminder to chat %d: %v", chatID, err)
			return err
		}
	}
	return nil
}

// subscribe registers a chat for due-review reminders
func (b *Bot) subscribe(chatID int64) {
	b.mu.Lock()
	b.chats[chatID] = true
	b.mu.Unlock()
}

// refProblem hands out a short callback token for a problem id. Telegram
// caps callback data at 64 bytes, which a judge URL easily exceeds.
func (b *Bot) refProblem(id string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextRef++
	ref := fmt.Sprintf("p%d", b.nextRef)
	b.refs[ref] = id
	return ref
}

// resolveRef turns a callback token back into a problem id
func (b *Bot) resolveRef(ref string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.refs[ref]
	return id, ok
}

// repoTracker adapts the problem repository to the detector.Tracker contract
type repoTracker struct {
	problems *database.ProblemRepository
}

func (t repoTracker) IsTracked(id string) (bool, error) {
	return t.problems.Exists(id)
}

// chatNotifier delivers a detection prompt to the chat that set up the watch
type chatNotifier struct {
	bot    *Bot
	chatID int64
}

// PromptTrack implements detector.Notifier. The record is written only when
// the user taps the confirmation button.
func (n chatNotifier) PromptTrack(d detector.Detection) {
	n.bot.promptTrack(n.chatID, d)
}
