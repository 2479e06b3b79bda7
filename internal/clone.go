package internal

// Clone deep-copies the whole room state. The reducer mutates only the copy,
// so a rejected action leaves the caller's state untouched.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	cp := *s

	cp.Players = make(map[string]*Player, len(s.Players))
	for id, p := range s.Players {
		cp.Players[id] = p.Clone()
	}
	cp.Queue = append([]string(nil), s.Queue...)
	cp.BannedIDs = append([]string(nil), s.BannedIDs...)
	cp.Chat = append([]ChatMessage(nil), s.Chat...)
	cp.History = append([]Turn(nil), s.History...)

	if s.Connect4 != nil {
		c4 := *s.Connect4
		cp.Connect4 = &c4
	}
	if s.WordBomb != nil {
		wb := *s.WordBomb
		wb.UsedWords = append([]string(nil), s.WordBomb.UsedWords...)
		wb.JoinedNextRound = append([]string(nil), s.WordBomb.JoinedNextRound...)
		cp.WordBomb = &wb
	}
	if s.Cards != nil {
		cd := *s.Cards
		if s.Cards.BlackCard != nil {
			bc := *s.Cards.BlackCard
			cd.BlackCard = &bc
		}
		cd.Submissions = make([]CardSubmission, len(s.Cards.Submissions))
		for i, sub := range s.Cards.Submissions {
			cd.Submissions[i] = sub
			cd.Submissions[i].Cards = append([]string(nil), sub.Cards...)
		}
		cd.UsedWhite = append([]string(nil), s.Cards.UsedWhite...)
		cp.Cards = &cd
	}
	if s.Boxes != nil {
		bx := *s.Boxes
		bx.Lines = append([]string(nil), s.Boxes.Lines...)
		bx.Boxes = make(map[string]string, len(s.Boxes.Boxes))
		for k, v := range s.Boxes.Boxes {
			bx.Boxes[k] = v
		}
		cp.Boxes = &bx
	}
	if s.Imposter != nil {
		im := *s.Imposter
		im.PlayerOrder = append([]string(nil), s.Imposter.PlayerOrder...)
		im.Hints = append([]ImposterHint(nil), s.Imposter.Hints...)
		im.Votes = append([]ImposterVote(nil), s.Imposter.Votes...)
		im.Scores = make(map[string]int, len(s.Imposter.Scores))
		for k, v := range s.Imposter.Scores {
			im.Scores[k] = v
		}
		im.UsedPairs = append([]int(nil), s.Imposter.UsedPairs...)
		im.ReadyPlayers = append([]string(nil), s.Imposter.ReadyPlayers...)
		cp.Imposter = &im
	}
	return &cp
}
