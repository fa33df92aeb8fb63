package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/example/algorecall/internal/detector"
	"github.com/example/algorecall/internal/excel"
	"github.com/example/algorecall/internal/review"
	"github.com/example/algorecall/internal/schedule"
	"github.com/example/algorecall/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleUpdate handles incoming updates from Telegram
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			switch update.Message.Command() {
			case "start":
				b.handleStartCommand(update.Message)
			case "due":
				b.handleDueCommand(update.Message)
			case "upcoming":
				b.handleUpcomingCommand(update.Message)
			case "search":
				b.handleSearchCommand(update.Message)
			case "stats":
				b.handleStatsCommand(update.Message)
			case "watch":
				b.handleWatchCommand(update.Message)
			case "unwatch":
				b.handleUnwatchCommand(update.Message)
			case "save":
				b.handleSaveCommand(update.Message)
			case "export":
				b.handleExportCommand(update.Message)
			case "reset":
				b.handleResetCommand(update.Message)
			default:
				b.send(update.Message.Chat.ID, "Unknown command. Use /start to see what I can do.")
			}
		} else {
			b.send(update.Message.Chat.ID, "I don't understand. Use /start to see the available commands.")
		}
	} else if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

// handleStartCommand handles the /start command
func (b *Bot) handleStartCommand(message *tgbotapi.Message) {
	b.subscribe(message.Chat.ID)

	welcomeText := `Welcome to AlgoRecall! 🧠

I keep the problems you solve on LeetCode, Codeforces, AtCoder and CodeChef on a spaced-repetition schedule: 3 days, then 7, then 21.

Available commands:
/due - Problems due for review
/upcoming - Scheduled reviews
/search <query> - Search tracked problems
/stats - Streak, topics and concept scores
/watch <url> - Watch a problem page for an accepted verdict
/unwatch <url> - Stop watching a page
/save <url> - Track a problem right away
/export - Download everything as a spreadsheet
/reset - Wipe all data`

	b.send(message.Chat.ID, welcomeText)
}

// handleDueCommand lists problems whose review date has passed
func (b *Bot) handleDueCommand(message *tgbotapi.Message) {
	problems, err := b.problems.GetAll()
	if err != nil {
		log.Printf("Error loading problems: %v", err)
		b.send(message.Chat.ID, "Storage is unavailable right now, try again later.")
		return
	}

	due := review.Due(problems, time.Now())
	if len(due) == 0 {
		b.send(message.Chat.ID, "🎉 All caught up! Nothing is due for review.")
		return
	}

	header := fmt.Sprintf("📋 %d problem(s) due for review:", len(due))
	b.send(message.Chat.ID, header)

	for i, p := range due {
		if i >= b.config.MaxListItems {
			b.send(message.Chat.ID, fmt.Sprintf("...and %d more. Clear some first!", len(due)-i))
			break
		}
		b.sendReviewCard(message.Chat.ID, p)
	}
}

// sendReviewCard sends one due problem with its pass/clear buttons
func (b *Bot) sendReviewCard(chatID int64, p models.Problem) {
	text := fmt.Sprintf("%s\n%s · stage %d/%d", p.Title, p.Platform, p.Stage, schedule.MaxStage)
	if len(p.Tags) > 0 {
		text += "\n🏷 " + strings.Join(p.Tags, ", ")
	}
	text += "\n" + p.URL

	ref := b.refProblem(p.ID)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{
			{Text: "✅ Passed", CallbackData: "pass:" + ref},
			{Text: "🗑 Clear", CallbackData: "clear:" + ref},
		},
	})
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending review card: %v", err)
	}
}

// handleUpcomingCommand lists scheduled reviews that are not yet due
func (b *Bot) handleUpcomingCommand(message *tgbotapi.Message) {
	problems, err := b.problems.GetAll()
	if err != nil {
		log.Printf("Error loading problems: %v", err)
		b.send(message.Chat.ID, "Storage is unavailable right now, try again later.")
		return
	}

	upcoming := review.Upcoming(problems, time.Now())
	if len(upcoming) == 0 {
		b.send(message.Chat.ID, "No upcoming reviews. Solve something!")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🗓 %d upcoming review(s):\n", len(upcoming)))
	for i, p := range upcoming {
		if i >= b.config.MaxListItems {
			sb.WriteString(fmt.Sprintf("...and %d more\n", len(upcoming)-i))
			break
		}
		sb.WriteString(fmt.Sprintf("• %s (%s) — %s\n", p.Title, p.Platform, p.NextReviewDate.Format("Jan 2")))
	}
	b.send(message.Chat.ID, sb.String())
}

// handleSearchCommand searches titles, platforms and tags
func (b *Bot) handleSearchCommand(message *tgbotapi.Message) {
	query := strings.TrimSpace(message.CommandArguments())
	if query == "" {
		b.send(message.Chat.ID, "Usage: /search <query>")
		return
	}

	problems, err := b.problems.GetAll()
	if err != nil {
		log.Printf("Error loading problems: %v", err)
		b.send(message.Chat.ID, "Storage is unavailable right now, try again later.")
		return
	}

	matched := review.Search(problems, query)
	if len(matched) == 0 {
		b.send(message.Chat.ID, "No matches found.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔍 %d match(es) for %q:\n", len(matched), query))
	for i, p := range matched {
		if i >= b.config.MaxListItems {
			sb.WriteString(fmt.Sprintf("...and %d more\n", len(matched)-i))
			break
		}
		sb.WriteString(fmt.Sprintf("• %s (%s, stage %d)\n", p.Title, p.Platform, p.Stage))
	}
	b.send(message.Chat.ID, sb.String())
}

// handleStatsCommand shows the streak, topic backlog and concept scores
func (b *Bot) handleStatsCommand(message *tgbotapi.Message) {
	problems, err := b.problems.GetAll()
	if err != nil {
		log.Printf("Error loading problems: %v", err)
		b.send(message.Chat.ID, "Storage is unavailable right now, try again later.")
		return
	}

	streak, err := b.streak.Get()
	if err != nil {
		log.Printf("Error loading streak: %v", err)
	}
	concepts, err := b.concepts.GetAll()
	if err != nil {
		log.Printf("Error loading concepts: %v", err)
	}

	now := time.Now()
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔥 Streak: %d day(s)\n", streak.Days))
	sb.WriteString(fmt.Sprintf("📋 Due: %d · Upcoming: %d\n", len(review.Due(problems, now)), len(review.Upcoming(problems, now))))

	backlog, untagged := review.TopicBacklog(problems)
	if len(backlog) > 0 || untagged > 0 {
		sb.WriteString("\nBacklog by topic:\n")
		for _, tc := range backlog {
			sb.WriteString(fmt.Sprintf("• %s — %d\n", tc.Tag, tc.Count))
		}
		if untagged > 0 {
			sb.WriteString(fmt.Sprintf("• untagged — %d\n", untagged))
		}
	}

	if len(concepts) > 0 {
		sb.WriteString("\nConcept scores:\n")
		for _, c := range concepts {
			sb.WriteString(fmt.Sprintf("• %s: %d/100\n", c.Tag, c.Score))
		}
	}

	b.send(message.Chat.ID, sb.String())
}

// handleWatchCommand starts a solved-detection poller for a judge page
func (b *Bot) handleWatchCommand(message *tgbotapi.Message) {
	url := strings.TrimSpace(message.CommandArguments())
	if url == "" {
		b.send(message.Chat.ID, "Usage: /watch <problem url>")
		return
	}

	adapter := b.registry.Match(url)
	if adapter == nil {
		b.send(message.Chat.ID, "No supported judge platform matches this URL.")
		return
	}

	id := schedule.CanonicalID(url)
	b.mu.Lock()
	if _, exists := b.watchers[id]; exists {
		b.mu.Unlock()
		b.send(message.Chat.ID, "Already watching this page.")
		return
	}
	ctx, cancel := context.WithCancel(b.ctx)
	b.watchers[id] = cancel
	b.mu.Unlock()

	poller := detector.New(url, adapter, b.config.WatchInterval,
		b.fetcher,
		repoTracker{problems: b.problems},
		chatNotifier{bot: b, chatID: message.Chat.ID},
	)
	go func() {
		poller.Run(ctx)
		b.mu.Lock()
		delete(b.watchers, id)
		b.mu.Unlock()
	}()

	b.send(message.Chat.ID, fmt.Sprintf("👀 Watching %s for an accepted verdict.", adapter.Name()))
}

// handleUnwatchCommand cancels an active page watcher
func (b *Bot) handleUnwatchCommand(message *tgbotapi.Message) {
	url := strings.TrimSpace(message.CommandArguments())
	if url == "" {
		b.send(message.Chat.ID, "Usage: /unwatch <problem url>")
		return
	}

	id := schedule.CanonicalID(url)
	b.mu.Lock()
	cancel, exists := b.watchers[id]
	b.mu.Unlock()
	if !exists {
		b.send(message.Chat.ID, "That page is not being watched.")
		return
	}
	cancel()
	b.send(message.Chat.ID, "Stopped watching.")
}

// handleSaveCommand tracks a problem immediately, scraping title and tags
// on a best-effort basis
func (b *Bot) handleSaveCommand(message *tgbotapi.Message) {
	url := strings.TrimSpace(message.CommandArguments())
	if url == "" {
		b.send(message.Chat.ID, "Usage: /save <problem url>")
		return
	}

	adapter := b.registry.Match(url)
	if adapter == nil {
		b.send(message.Chat.ID, "No supported judge platform matches this URL.")
		return
	}

	title := ""
	var tags []string
	fetchCtx, cancel := context.WithTimeout(b.ctx, b.config.FetchTimeout)
	defer cancel()
	if page, err := b.fetcher.Fetch(fetchCtx, url); err != nil {
		log.Printf("Error fetching %s for save: %v", url, err)
	} else {
		title = adapter.ExtractTitle(page)
		tags = adapter.ExtractTags(page)
	}

	err := b.engine.RecordProblem(b.ctx, schedule.SaveRequest{
		Title:    title,
		URL:      url,
		Platform: adapter.Name(),
		Tags:     tags,
	})
	if err != nil {
		b.reportEngineError(message.Chat.ID, err)
		return
	}
	b.send(message.Chat.ID, "✅ Added to the schedule, first review in 3 days.")
}

// handleExportCommand sends the tracked set as an xlsx document
func (b *Bot) handleExportCommand(message *tgbotapi.Message) {
	problems, err := b.problems.GetAll()
	if err != nil {
		log.Printf("Error loading problems: %v", err)
		b.send(message.Chat.ID, "Storage is unavailable right now, try again later.")
		return
	}
	concepts, err := b.concepts.GetAll()
	if err != nil {
		log.Printf("Error loading concepts: %v", err)
		b.send(message.Chat.ID, "Storage is unavailable right now, try again later.")
		return
	}

	data, err := excel.Export(problems, concepts)
	if err != nil {
		log.Printf("Error building export: %v", err)
		b.send(message.Chat.ID, "Failed to build the export file.")
		return
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, tgbotapi.FileBytes{
		Name:  "algorecall.xlsx",
		Bytes: data,
	})
	if _, err := b.api.Send(doc); err != nil {
		log.Printf("Error sending export: %v", err)
	}
}

// handleResetCommand asks for confirmation before wiping everything
func (b *Bot) handleResetCommand(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "This removes all problems, concept scores and your streak. Sure?")
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{
			{Text: "Yes, wipe it", CallbackData: "reset:yes"},
			{Text: "Cancel", CallbackData: "reset:no"},
		},
	})
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending reset prompt: %v", err)
	}
}

// promptTrack offers to add a freshly detected solve to the schedule
func (b *Bot) promptTrack(chatID int64, d detector.Detection) {
	b.mu.Lock()
	b.nextRef++
	ref := fmt.Sprintf("d%d", b.nextRef)
	b.pending[ref] = d
	b.mu.Unlock()

	text := fmt.Sprintf("Solved! 🎉\n%s (%s)", d.Title, d.Platform)
	if len(d.Tags) > 0 {
		limit := len(d.Tags)
		if limit > 3 {
			limit = 3
		}
		text += "\n🏷 " + strings.Join(d.Tags[:limit], ", ")
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard([][]MenuButton{
		{
			{Text: "Add to Schedule (3 days)", CallbackData: "track:" + ref},
			{Text: "✕ Dismiss", CallbackData: "dismiss:" + ref},
		},
	})
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending track prompt: %v", err)
	}
}

// handleCallbackQuery handles inline keyboard presses
func (b *Bot) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	parts := strings.SplitN(callback.Data, ":", 2)
	if len(parts) != 2 {
		b.answerCallback(callback.ID, "")
		return
	}
	action, ref := parts[0], parts[1]
	chatID := callback.Message.Chat.ID

	switch action {
	case "pass", "clear":
		id, ok := b.resolveRef(ref)
		if !ok {
			b.answerCallback(callback.ID, "This button has expired.")
			return
		}
		b.applyReview(callback, chatID, id, schedule.Action(action))
	case "track":
		b.mu.Lock()
		d, ok := b.pending[ref]
		delete(b.pending, ref)
		b.mu.Unlock()
		if !ok {
			b.answerCallback(callback.ID, "This prompt has expired.")
			return
		}
		err := b.engine.RecordProblem(b.ctx, schedule.SaveRequest{
			Title:    d.Title,
			URL:      d.URL,
			Platform: d.Platform,
			Tags:     d.Tags,
		})
		if err != nil {
			b.answerCallback(callback.ID, "")
			b.reportEngineError(chatID, err)
			return
		}
		b.answerCallback(callback.ID, "Scheduled! ✅")
		b.editMessage(chatID, callback.Message.MessageID, fmt.Sprintf("✅ %s is on the schedule, first review in 3 days.", d.Title))
	case "dismiss":
		b.mu.Lock()
		delete(b.pending, ref)
		b.mu.Unlock()
		b.answerCallback(callback.ID, "")
		b.editMessage(chatID, callback.Message.MessageID, "Dismissed.")
	case "reset":
		if ref != "yes" {
			b.answerCallback(callback.ID, "")
			b.editMessage(chatID, callback.Message.MessageID, "Reset cancelled.")
			return
		}
		if err := b.engine.ResetAll(b.ctx); err != nil {
			b.answerCallback(callback.ID, "")
			b.reportEngineError(chatID, err)
			return
		}
		b.answerCallback(callback.ID, "Wiped.")
		b.editMessage(chatID, callback.Message.MessageID, "All data removed. Fresh start!")
	default:
		b.answerCallback(callback.ID, "")
	}
}

// applyReview runs a pass/clear through the engine and rewrites the review
// card with the outcome. The edit happens only after the engine confirms
// completion, so the card never shows a stale state.
func (b *Bot) applyReview(callback *tgbotapi.CallbackQuery, chatID int64, id string, action schedule.Action) {
	if err := b.engine.AdvanceReview(b.ctx, id, action); err != nil {
		b.answerCallback(callback.ID, "")
		b.reportEngineError(chatID, err)
		return
	}

	// The record is gone when the ladder was exhausted or it was cleared.
	p, err := b.problems.GetByID(id)
	if err != nil {
		log.Printf("Error re-reading problem %s: %v", id, err)
	}

	b.answerCallback(callback.ID, "Done!")
	if p == nil {
		b.editMessage(chatID, callback.Message.MessageID, "🎉 Retired from the rotation. Well done!")
	} else {
		b.editMessage(chatID, callback.Message.MessageID,
			fmt.Sprintf("✅ %s moved to stage %d. Next review %s.", p.Title, p.Stage, p.NextReviewDate.Format("Jan 2")))
	}
}

// reportEngineError translates engine failures for the user. A persistence
// failure means the mutation did not apply and it is safe to retry.
func (b *Bot) reportEngineError(chatID int64, err error) {
	if errors.Is(err, schedule.ErrPersistenceUnavailable) {
		b.send(chatID, "Storage is unavailable — nothing was changed. Please try again.")
		return
	}
	log.Printf("Engine error: %v", err)
	b.send(chatID, "Something went wrong, please try again.")
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Error sending message to chat %d: %v", chatID, err)
	}
}

func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("Error answering callback: %v", err)
	}
}

func (b *Bot) editMessage(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if _, err := b.api.Send(edit); err != nil {
		log.Printf("Error editing message: %v", err)
	}
}
