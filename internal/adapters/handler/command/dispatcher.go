package command

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/forkthisidea/ideahub/internal/core/domain"
	"github.com/forkthisidea/ideahub/internal/core/ports"
)

const defaultListLimit = 5

// ideaMarker matches the submission prefix users type in chat ("PI: ..."),
// in any casing, with or without the colon.
var ideaMarker = regexp.MustCompile(`^[Pp][Ii]:?\s+`)

// Dispatcher maps inbound platform commands to engine operations and renders
// the outcome as a text reply. It is the only place where error kinds become
// user-facing messages; anything it does not recognize renders as usage text.
type Dispatcher struct {
	ideas   ports.IdeaService
	votes   ports.VoteService
	ranking ports.RankingService
	stats   ports.StatsService
	nowFunc func() time.Time
}

func NewDispatcher(ideas ports.IdeaService, votes ports.VoteService, ranking ports.RankingService, stats ports.StatsService) *Dispatcher {
	return &Dispatcher{
		ideas:   ideas,
		votes:   votes,
		ranking: ranking,
		stats:   stats,
		nowFunc: time.Now,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, userID, text string) string {
	trimmed := strings.TrimSpace(text)

	// Bare "PI: ..." messages are submissions, same as the submit command.
	if ideaMarker.MatchString(trimmed) {
		return d.submit(ctx, userID, ideaMarker.ReplaceAllString(trimmed, ""))
	}

	cmd, rest, _ := strings.Cut(trimmed, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "submit":
		return d.submit(ctx, userID, rest)
	case "vote":
		return d.vote(ctx, userID, rest)
	case "list", "fetch":
		return d.list(ctx, userID, rest)
	case "count":
		return d.count(ctx, userID, rest)
	case "help":
		return helpMessage(userID)
	default:
		return usageMessage(userID)
	}
}

func (d *Dispatcher) submit(ctx context.Context, userID, text string) string {
	idea, err := d.ideas.Submit(ctx, ports.SubmitIdeaInput{AuthorID: userID, Text: text})
	switch {
	case err == nil:
		return fmt.Sprintf("Thank you <@%s>! Your idea has been submitted (id %s).", userID, idea.ID)
	case errors.Is(err, domain.ErrEmptyIdeaText):
		return fmt.Sprintf("Hello <@%s>! Please provide an idea with your command.", userID)
	case errors.Is(err, domain.ErrIdeaTextTooLong):
		return fmt.Sprintf("Sorry <@%s>, that idea is too long. Please trim it down and try again.", userID)
	default:
		return genericFailure(userID)
	}
}

func (d *Dispatcher) vote(ctx context.Context, userID, rest string) string {
	ideaID, _, _ := strings.Cut(rest, " ")
	if ideaID == "" {
		return fmt.Sprintf("Hello <@%s>! Please provide an idea id, like 'vote <idea-id>'.", userID)
	}

	result, err := d.votes.Cast(ctx, ideaID, userID)
	switch {
	case err == nil && result.Status == domain.VoteDuplicate:
		return fmt.Sprintf("You have already voted on this idea, <@%s>. It still has %s.", userID, voteNoun(result.VoteCount))
	case err == nil:
		return fmt.Sprintf("Your vote is in, <@%s>! This idea now has %s.", userID, voteNoun(result.VoteCount))
	case errors.Is(err, domain.ErrInvalidIdeaID), errors.Is(err, domain.ErrIdeaNotFound):
		return fmt.Sprintf("Sorry <@%s>, there is no idea with that id.", userID)
	default:
		return genericFailure(userID)
	}
}

func (d *Dispatcher) list(ctx context.Context, userID, rest string) string {
	selector, limit := parseListArgs(rest)

	var ideas []*domain.Idea
	var err error
	switch strings.ToLower(selector) {
	case "top":
		ideas, err = d.ranking.Top(ctx, limit)
	case "recent", "all", "":
		ideas, err = d.ranking.Recent(ctx, limit)
	case "today":
		ideas, err = d.ideas.ListSince(ctx, d.nowFunc().Add(-24*time.Hour), limit)
	case "me", "mine":
		ideas, err = d.ideas.ListByAuthor(ctx, userID, limit)
	default:
		if mention, ok := parseMention(selector); ok {
			ideas, err = d.ideas.ListByAuthor(ctx, mention, limit)
			break
		}
		return usageMessage(userID)
	}
	if err != nil {
		return genericFailure(userID)
	}

	return renderIdeas(ideas)
}

func (d *Dispatcher) count(ctx context.Context, userID, rest string) string {
	selector, _, _ := strings.Cut(rest, " ")

	if mention, ok := parseMention(selector); ok {
		count, err := d.stats.CountIdeasByAuthor(ctx, mention)
		if err != nil {
			return genericFailure(userID)
		}
		return fmt.Sprintf("<@%s> has submitted %d ideas.", mention, count)
	}

	if strings.EqualFold(selector, "me") {
		count, err := d.stats.CountIdeasByAuthor(ctx, userID)
		if err != nil {
			return genericFailure(userID)
		}
		return fmt.Sprintf("You have submitted %d ideas.", count)
	}

	count, err := d.stats.CountIdeas(ctx)
	if err != nil {
		return genericFailure(userID)
	}
	return fmt.Sprintf("There are a total of %d ideas submitted.", count)
}

// parseListArgs splits "top 10" / "10" / "today" into a selector and a limit.
// The selector keeps its original casing: it may be a user mention.
func parseListArgs(rest string) (string, int) {
	selector := ""
	limit := defaultListLimit
	for _, arg := range strings.Fields(rest) {
		if n, err := strconv.Atoi(arg); err == nil {
			limit = n
			continue
		}
		if selector == "" {
			selector = arg
		}
	}
	return selector, limit
}

// parseMention extracts the user id out of a platform mention like <@U123>.
func parseMention(arg string) (string, bool) {
	if strings.HasPrefix(arg, "<@") && strings.HasSuffix(arg, ">") && len(arg) > 3 {
		id := arg[2 : len(arg)-1]
		if name, _, cut := strings.Cut(id, "|"); cut {
			id = name
		}
		return id, true
	}
	return "", false
}

func renderIdeas(ideas []*domain.Idea) string {
	if len(ideas) == 0 {
		return "No ideas found."
	}

	var b strings.Builder
	for i, idea := range ideas {
		fmt.Fprintf(&b, "%d. %s - submitted by <@%s> on %s with %s (id %s)\n",
			i+1,
			idea.Text,
			idea.AuthorID,
			idea.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"),
			voteNoun(idea.VoteCount),
			idea.ID,
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

func voteNoun(count int64) string {
	if count == 1 {
		return "1 vote"
	}
	return fmt.Sprintf("%d votes", count)
}

func genericFailure(userID string) string {
	return fmt.Sprintf("Sorry <@%s>, something went wrong. Please try again.", userID)
}

func helpMessage(userID string) string {
	return fmt.Sprintf(`Hello <@%s>! Here are the available commands:
*Submit an idea:* 'submit <text>' (or simply 'PI: <text>')
*Vote on an idea:* 'vote <idea-id>'
*List ideas:* 'list [top|recent|today|mine] [limit]'
*Count ideas:* 'count [me]'
*Example:* 'submit Build a widget that forks ideas'`, userID)
}

func usageMessage(userID string) string {
	return fmt.Sprintf(`Hi <@%s>! That was an invalid command. Please use one of the following commands:
- 'submit <text>': Submit a new idea
- 'vote <idea-id>': Vote on an idea
- 'list [top|recent|today|mine] [limit]': List ideas by different criteria
- 'count [me]': Count ideas for yourself or everyone
- 'help': See detailed help information`, userID)
}
