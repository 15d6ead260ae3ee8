package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/spelldesk/spelldesk/internal/game"
)

// activeSession is the singleton match session (one per stdio process).
var activeSession *MatchSession

// RegisterTools adds all match tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startMatchTool(), handleStartMatch)
	s.AddTool(getStateTool(), handleGetState)
	s.AddTool(pullCardTool(), handlePullCard)
	s.AddTool(moveCardTool(), handleMoveCard)
	s.AddTool(useEnchantTool(), handleUseEnchant)
	s.AddTool(completeTurnTool(), handleCompleteTurn)
}

// --- Tool definitions ---

func startMatchTool() mcp.Tool {
	return mcp.NewTool("start_match",
		mcp.WithDescription("Start a new spelldesk match with both players seated. Players are 'p1' and 'p2'; "+
			"p1 acts first. Returns the full game state. Only one match runs at a time; starting a new one "+
			"replaces a finished match."),
		mcp.WithString("player_one_name", mcp.Description("Display name for p1")),
		mcp.WithString("player_two_name", mcp.Description("Display name for p2")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current game state without acting. Read-only."),
	)
}

func pullCardTool() mcp.Tool {
	return mcp.NewTool("pull_card",
		mcp.WithDescription("Draw a card into the player's first free hand slot. Silently does nothing when the "+
			"hand plus desk cards are at the six-card cap."),
		mcp.WithString("player", mcp.Required(), mcp.Description("Acting player: 'p1' or 'p2'")),
	)
}

func moveCardTool() mcp.Tool {
	return mcp.NewTool("move_card",
		mcp.WithDescription("Move a card between zones. Kinds: 'hand_desk' places a hand card on the desk "+
			"(active player only, costs the card's mana), 'desk_hand' retracts an own unpinned desk card "+
			"(refunds mana), 'desk_desk' shifts a desk card sideways, 'hand_hand' rearranges the hand. "+
			"Illegal moves are silent no-ops; compare the returned state."),
		mcp.WithString("player", mcp.Required(), mcp.Description("Acting player: 'p1' or 'p2'")),
		mcp.WithString("kind", mcp.Required(), mcp.Description("One of: hand_desk, desk_hand, desk_desk, hand_hand")),
		mcp.WithNumber("from", mcp.Required(), mcp.Description("Source slot index (0-5)")),
		mcp.WithNumber("to", mcp.Required(), mcp.Description("Destination slot index (0-5)")),
	)
}

func useEnchantTool() mcp.Tool {
	return mcp.NewTool("use_enchant",
		mcp.WithDescription("Fire an enchant at a desk slot. The pin enchant costs mana scaled by the target "+
			"slot's distance from the desk center and pins the card there."),
		mcp.WithString("player", mcp.Required(), mcp.Description("Acting player: 'p1' or 'p2'")),
		mcp.WithNumber("enchant_slot", mcp.Required(), mcp.Description("Enchant pool slot index (0-1)")),
		mcp.WithNumber("target_slot", mcp.Required(), mcp.Description("Desk slot to target (0-5)")),
	)
}

func completeTurnTool() mcp.Tool {
	return mcp.NewTool("complete_turn",
		mcp.WithDescription("End the acting player's turn. When both players have acted, the desk resolves "+
			"slot by slot immediately and the response carries every resulting action."),
		mcp.WithString("player", mcp.Required(), mcp.Description("Acting player: 'p1' or 'p2'")),
	)
}

// --- Tool handlers ---

func handleStartMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil && activeSession.game.State != game.StatusComplete {
		return mcp.NewToolResultError("A match is already running. Finish it before starting a new one."), nil
	}

	nameOne := request.GetString("player_one_name", "Player 1")
	nameTwo := request.GetString("player_two_name", "Player 2")
	activeSession = NewMatchSession(nameOne, nameTwo)

	return mcp.NewToolResultText(activeSession.respond(nil)), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := requireSession()
	if errResult != nil {
		return errResult, nil
	}
	return mcp.NewToolResultText(sess.respond(nil)), nil
}

func handlePullCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := requireSession()
	if errResult != nil {
		return errResult, nil
	}
	player, errResult := requirePlayer(request)
	if errResult != nil {
		return errResult, nil
	}

	sess.game.PullCard(player)
	return mcp.NewToolResultText(sess.respond(nil)), nil
}

func handleMoveCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := requireSession()
	if errResult != nil {
		return errResult, nil
	}
	player, errResult := requirePlayer(request)
	if errResult != nil {
		return errResult, nil
	}

	kind := request.GetString("kind", "")
	from := request.GetInt("from", -1)
	to := request.GetInt("to", -1)

	switch kind {
	case "hand_desk":
		sess.game.MoveCardFromHandToDesk(player, from, to)
	case "desk_hand":
		sess.game.MoveCardFromDeskToHand(player, from, to)
	case "desk_desk":
		sess.game.MoveCardFromDeskToDesk(player, from, to)
	case "hand_hand":
		sess.game.MoveCardFromHandToHand(player, from, to)
	default:
		return mcp.NewToolResultErrorf("Unknown move kind %q. Use hand_desk, desk_hand, desk_desk, or hand_hand.", kind), nil
	}
	return mcp.NewToolResultText(sess.respond(nil)), nil
}

func handleUseEnchant(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := requireSession()
	if errResult != nil {
		return errResult, nil
	}
	player, errResult := requirePlayer(request)
	if errResult != nil {
		return errResult, nil
	}

	enchantSlot := request.GetInt("enchant_slot", -1)
	targetSlot := request.GetInt("target_slot", -1)
	actions := sess.game.UseEnchantOn(player, enchantSlot, targetSlot)
	return mcp.NewToolResultText(sess.respond(actions)), nil
}

func handleCompleteTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := requireSession()
	if errResult != nil {
		return errResult, nil
	}
	player, errResult := requirePlayer(request)
	if errResult != nil {
		return errResult, nil
	}

	sess.game.CompleteTurn(player)
	var actions []game.Action
	if sess.game.State == game.StatusExecutionTurn {
		actions = sess.drainExecution()
	}
	return mcp.NewToolResultText(sess.respond(actions)), nil
}

// --- Helpers ---

func requireSession() (*MatchSession, *mcp.CallToolResult) {
	if activeSession == nil {
		return nil, mcp.NewToolResultError("No match is running. Use start_match first.")
	}
	return activeSession, nil
}

func requirePlayer(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	player := request.GetString("player", "")
	if player != PlayerOne && player != PlayerTwo {
		return "", mcp.NewToolResultErrorf("Invalid player %q. Use '%s' or '%s'.", player, PlayerOne, PlayerTwo)
	}
	return player, nil
}
