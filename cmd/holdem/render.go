package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	redCardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	blackCardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func renderCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return mutedStyle.Render("--")
	}
	h, err := deck.NewHand(cards...)
	if err != nil {
		return deck.FormatCards(cards)
	}
	parts := make([]string, 0, h.Len())
	for _, tok := range h.DisplayTokens() {
		style := blackCardStyle
		if tok.Suit.IsRed() {
			style = redCardStyle
		}
		parts = append(parts, style.Render(tok.Rank.String()+tok.Suit.String()))
	}
	return strings.Join(parts, " ")
}

func percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// printHand writes one finished hand: the board, every seat's hole cards,
// flop equity and final rank, then the winners.
func printHand(w io.Writer, number int, gm *game.GameMaster, result game.ShowdownResult) {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(fmt.Sprintf("Hand #%d", number)), mutedStyle.Render(result.HandID))
	fmt.Fprintf(w, "%s %s\n\n", headerStyle.Render("board"), renderCards(result.Board))

	won := make(map[int]int, len(result.Winners))
	for i, seat := range result.Winners {
		won[seat] = result.Payouts[i]
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("seat"),
		headerStyle.Render("player"),
		headerStyle.Render("hole"),
		headerStyle.Render("flop equity"),
		headerStyle.Render("rank"),
		headerStyle.Render("chips"))

	for seat, p := range gm.Players() {
		marker := ""
		switch {
		case seat == gm.BigBlindSeat():
			marker = " (BB)"
		case seat == gm.SmallBlindSeat():
			marker = " (SB)"
		}

		rank := mutedStyle.Render("not dealt")
		if r, ok := p.Rank(); ok {
			rank = r.String()
		}

		chips := fmt.Sprintf("%d", p.Chips())
		if amount, ok := won[seat]; ok {
			style := winStyle
			if result.Split() {
				style = tieStyle
			}
			chips = style.Render(fmt.Sprintf("%d (+%d)", p.Chips(), amount))
		}

		fmt.Fprintf(tw, "%d%s\t%s\t%s\t%s\t%s\t%s\n",
			seat, marker,
			p.Name(),
			renderCards(p.Hole().Cards()),
			percent(p.Equity()),
			rank,
			chips)
	}
	tw.Flush()

	fmt.Fprintln(w)
	switch {
	case len(result.Winners) == 0:
		fmt.Fprintln(w, mutedStyle.Render("No live hands, the pot carries over"))
	case result.Split():
		names := make([]string, len(result.Winners))
		for i, seat := range result.Winners {
			names[i] = gm.Table().Seat(seat).Name()
		}
		fmt.Fprintf(w, "%s %s split with %s\n", tieStyle.Render("Split pot:"), strings.Join(names, ", "), result.Rank.Describe())
	default:
		winner := gm.Table().Seat(result.Winners[0])
		fmt.Fprintf(w, "%s %s wins %d with %s\n", winStyle.Render("Winner:"), winner.Name(), result.Payouts[0], result.Rank.Describe())
	}
	fmt.Fprintln(w)
}
