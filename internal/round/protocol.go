package round

import (
	"fmt"
	"strings"

	"github.com/agade09/wondev-arena/internal/geometry"
	"github.com/agade09/wondev-arena/internal/state"
)

// preamble is sent once, on spawn: grid width then the fixed
// pawn-count-per-side of 2 (spec §6).
func preamble(s *state.State) string {
	return fmt.Sprintf("%d\n2\n", s.W)
}

// turnPacket composes the player-relative view sent to the contestant
// every turn: the board, its own two pawns, the opponent's two pawns
// (or -1 -1 where not visible), and a trailing legal-move count that is
// always 0 because the bot must search its own moves (spec §6).
func turnPacket(s *state.State, player int) string {
	var sb strings.Builder
	s.RenderRows(&sb)

	mine0, mine1 := state.PlayerPawns(player)
	sb.WriteString(s.Pawns[mine0].String())
	sb.WriteByte('\n')
	sb.WriteString(s.Pawns[mine1].String())
	sb.WriteByte('\n')

	opp0, opp1 := state.PlayerPawns(1 - player)
	writeOpponentPawn(&sb, s, player, opp0)
	writeOpponentPawn(&sb, s, player, opp1)

	sb.WriteString("0\n")
	return sb.String()
}

func writeOpponentPawn(sb *strings.Builder, s *state.State, player, pawnID int) {
	pos := s.Pawns[pawnID]
	if s.Visible(player, pos) {
		sb.WriteString(pos.String())
	} else {
		sb.WriteString(geometry.Unseen.String())
	}
	sb.WriteByte('\n')
}
