package game

import (
	"github.com/scythe504/partydeck-backend/internal"
)

const maskedCharacter = "???"

// ProjectFor renders the state a given viewer is allowed to see. The stored
// state is never modified; callers hand the projection straight to the wire.
//
// An empty viewerID means an outside observer and gets the strictest view.
func ProjectFor(s *internal.GameState, viewerID string, now int64) *internal.GameState {
	out := s.Clone()
	out.ServerTime = now

	viewer := out.Players[viewerID]
	spectating := viewer != nil && viewer.Role == internal.RoleSpectator

	if out.GameType == internal.GameGuessWho {
		finished := out.Status == internal.PartyFinished || out.MatchStatus == internal.MatchFinished
		for id, p := range out.Players {
			if p.GuessWho == nil {
				continue
			}
			if id == viewerID || finished || spectating {
				continue
			}
			p.GuessWho.CharacterID = maskedCharacter
		}
	}

	if out.GameType == internal.GameImposter {
		for id, p := range out.Players {
			if id != viewerID {
				p.Imposter = nil
			}
		}
		if out.Imposter != nil {
			// The word pair never leaves the server at state level; each
			// player carries their own copy in player data.
			out.Imposter.SecretWord = ""
			out.Imposter.HintWord = ""
			if out.Imposter.Phase != internal.ImposterResults {
				out.Imposter.ImposterID = ""
			}
		}
	}

	return out
}
