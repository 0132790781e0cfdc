package slack

import (
	"context"
	"strings"
	"testing"

	"github.com/slack-go/slack/slackevents"

	"github.com/shubh-37/calmmind/internal/models"
)

func TestHandleMessage_CheckIn(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t)
	ctx := context.Background()

	err := rig.messages.HandleMessage(ctx, &slackevents.MessageEvent{
		Channel:   "C1",
		User:      "U1",
		Text:      "I feel lost, alone and mentally drained\nmood: overwhelmed",
		TimeStamp: "1.0",
	})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	reply := rig.messenger.last(t)
	if !strings.Contains(reply.Text, "Stress Level: HIGH") {
		t.Fatalf("reply=%q", reply.Text)
	}
	for _, want := range []string{"> Hold on.", "Talk to a friend or therapist", "search_query=", "A gentle story."} {
		if !strings.Contains(reply.Text, want) {
			t.Fatalf("reply missing %q:\n%s", want, reply.Text)
		}
	}

	records, err := rig.repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 1 || records[0].Mood != models.MoodOverwhelmed || records[0].StressLevel != models.StressHigh {
		t.Fatalf("records=%+v", records)
	}

	session, ok := rig.sessions.ForMessage(reply.TS)
	if !ok || session.Level != models.StressHigh {
		t.Fatalf("session=%+v ok=%v", session, ok)
	}
}

func TestHandleMessage_Ignored(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t)
	ctx := context.Background()

	events := []*slackevents.MessageEvent{
		{Channel: "C1", BotID: "B1", Text: "from a bot"},
		{Channel: "C1", User: "UBOT", Text: "from ourselves"},
		{Channel: "C1", User: "U1", SubType: "message_changed", Text: "edit"},
		{Channel: "C1", User: "U1", Text: "thread reply", TimeStamp: "2.0", ThreadTimeStamp: "1.0"},
		{Channel: "C1", User: "U1", Text: "<@UBOT> trend"},
	}
	for _, ev := range events {
		if err := rig.messages.HandleMessage(ctx, ev); err != nil {
			t.Fatalf("HandleMessage: %v", err)
		}
	}
	if rig.messenger.count() != 0 {
		t.Fatalf("sent=%d", rig.messenger.count())
	}
	if rig.llm.count("classify") != 0 {
		t.Fatalf("classified ignored messages")
	}
}

func TestHandleMessage_EmptyAndInvalid(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t)
	ctx := context.Background()

	if err := rig.messages.HandleMessage(ctx, &slackevents.MessageEvent{Channel: "C1", User: "U1", Text: "mood: meh"}); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !strings.Contains(rig.messenger.last(t).Text, "Please describe how you're feeling") {
		t.Fatalf("reply=%q", rig.messenger.last(t).Text)
	}

	if err := rig.messages.HandleMessage(ctx, &slackevents.MessageEvent{Channel: "C1", User: "U1", Text: "ugh\nmood: ecstatic"}); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !strings.Contains(rig.messenger.last(t).Text, "unknown mood") {
		t.Fatalf("reply=%q", rig.messenger.last(t).Text)
	}

	if rig.llm.count("classify") != 0 {
		t.Fatalf("classifier should not be called")
	}
	if _, err := rig.repo.GetAll(ctx); err == nil {
		t.Fatalf("expected no log file")
	}
}

func TestHandleAppMention_Commands(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t)
	ctx := context.Background()
	mention := func(text string) string {
		t.Helper()
		if err := rig.messages.HandleAppMention(ctx, &slackevents.AppMentionEvent{Channel: "C1", User: "U1", Text: "<@UBOT> " + text}); err != nil {
			t.Fatalf("HandleAppMention(%q): %v", text, err)
		}
		return rig.messenger.last(t).Text
	}

	if got := mention("trend"); !strings.Contains(got, "No log data found yet") {
		t.Fatalf("trend before data=%q", got)
	}
	if got := mention("refresh quotes"); !strings.Contains(got, "Check in first") {
		t.Fatalf("refresh without session=%q", got)
	}
	if got := mention("help"); !strings.Contains(got, "CalmMind") {
		t.Fatalf("help=%q", got)
	}

	mention("Deadlines are crushing and I feel overwhelmed\nmood: stressed\njournal: long day")

	if got := mention("trend"); !strings.Contains(got, "3.00") {
		t.Fatalf("trend=%q", got)
	}
	if got := mention("journal 3"); !strings.Contains(got, "Deadlines are crushing") || !strings.Contains(got, "long day") {
		t.Fatalf("journal=%q", got)
	}
	if got := mention("stats"); !strings.Contains(got, "Total check-ins: *1*") {
		t.Fatalf("stats=%q", got)
	}

	rig.llm.quotes = []string{"Fresh one.", "Fresh two."}
	if got := mention("refresh quotes"); !strings.Contains(got, "Fresh one.") {
		t.Fatalf("refresh quotes=%q", got)
	}
	if got := mention("refresh story"); !strings.Contains(got, "A gentle story.") {
		t.Fatalf("refresh story=%q", got)
	}

	if rig.llm.count("classify") != 1 {
		t.Fatalf("classify calls=%d", rig.llm.count("classify"))
	}
	if n, _ := rig.repo.Count(ctx); n != 1 {
		t.Fatalf("logged=%d, refresh must not log", n)
	}
}

func TestHandleReaction(t *testing.T) {
	t.Parallel()

	rig := newTestRig(t)
	ctx := context.Background()

	if err := rig.messages.HandleMessage(ctx, &slackevents.MessageEvent{Channel: "C1", User: "U1", Text: "rough week"}); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	reply := rig.messenger.last(t)

	react := func(reaction, ts string) {
		t.Helper()
		ev := &slackevents.ReactionAddedEvent{Reaction: reaction}
		ev.Item.Channel = "C1"
		ev.Item.Timestamp = ts
		if err := rig.reactions.HandleReaction(ctx, ev); err != nil {
			t.Fatalf("HandleReaction: %v", err)
		}
	}

	react("repeat", reply.TS)
	if rig.llm.count("quotes") != 2 {
		t.Fatalf("quotes calls=%d", rig.llm.count("quotes"))
	}

	react("book", reply.TS)
	if rig.llm.count("story") != 2 {
		t.Fatalf("story calls=%d", rig.llm.count("story"))
	}

	before := rig.messenger.count()
	react("repeat", "unknown.ts")
	react("tada", reply.TS)
	if rig.messenger.count() != before {
		t.Fatalf("unexpected messages for ignored reactions")
	}
}
