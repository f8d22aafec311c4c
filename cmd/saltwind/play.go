package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/saltwindgames/saltwind/internal/dice"
	"github.com/saltwindgames/saltwind/internal/engine"
	"github.com/saltwindgames/saltwind/internal/entities"
	"github.com/saltwindgames/saltwind/internal/errors"
	"github.com/saltwindgames/saltwind/internal/pkg/idgen"
	redisclient "github.com/saltwindgames/saltwind/internal/redis"
	"github.com/saltwindgames/saltwind/internal/repositories/saves"
	"github.com/saltwindgames/saltwind/internal/rules"
	"github.com/saltwindgames/saltwind/internal/world"
)

var (
	playSeed      int64
	playName      string
	playArchetype string
	playRedisAddr string
	playSlot      string
	playLoad      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run a headless play session over stdin",
	Long: `Play starts a session and reads one command per line:
  n/s/e/w     move (bump to attack)
  i           interact (talk, loot)
  rest        rest
  prepare <spell>, cast <spell>, cursor <dx> <dy>, confirm, cancel
  equip/use/drop <index>
  look, status, save, quit`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "world seed (0 picks one)")
	playCmd.Flags().StringVar(&playName, "name", "Traveler", "character name")
	playCmd.Flags().StringVar(&playArchetype, "archetype", "Warrior", "Warrior, Mage or Expert")
	playCmd.Flags().StringVar(&playRedisAddr, "redis", "", "redis endpoint for saves (empty disables saving)")
	playCmd.Flags().StringVar(&playSlot, "slot", "slot1", "save slot name")
	playCmd.Flags().BoolVar(&playLoad, "load", false, "resume from the save slot")
}

// session bundles the engine with its save store for the command loop.
type session struct {
	engine *engine.Engine
	repo   saves.Repository
	seed   int64
	seen   int // messages already printed
}

func runPlay(cmd *cobra.Command, _ []string) error {
	archetype := rules.Archetype(playArchetype)
	if !archetype.Valid() {
		return errors.InvalidArgumentf("unknown archetype %q", playArchetype)
	}
	if playSeed == 0 {
		playSeed = time.Now().UnixNano()
	}

	var repo saves.Repository
	if playRedisAddr != "" {
		client, err := redisclient.NewClient(playRedisAddr, nil)
		if err != nil {
			return err
		}
		repo, err = saves.NewRedisRepository(&saves.Config{Client: client})
		if err != nil {
			return err
		}
	}

	player, seed, err := resolvePlayer(cmd.Context(), repo, archetype)
	if err != nil {
		return err
	}

	gen, err := world.NewGenerator(&world.Config{Seed: seed, IDGenerator: idgen.NewUUID("world")})
	if err != nil {
		return err
	}

	e, err := engine.New(&engine.Config{
		Roller:      dice.NewToolkit(),
		IDGenerator: idgen.NewUUID("game"),
		EventBus:    events.NewBus(),
		Generator:   gen,
		Player:      player,
	})
	if err != nil {
		return err
	}

	s := &session{engine: e, repo: repo, seed: seed}
	s.flushMessages()
	return s.loop(cmd.Context(), os.Stdin)
}

// resolvePlayer loads the saved character when --load is set, otherwise
// rolls a fresh one. A missing slot falls back to a fresh character.
func resolvePlayer(ctx context.Context, repo saves.Repository, archetype rules.Archetype) (*entities.Player, int64, error) {
	if playLoad && repo != nil {
		out, err := repo.Load(ctx, saves.LoadInput{Slot: playSlot})
		switch {
		case err == nil:
			fmt.Printf("Resuming %s (level %d %s) from slot %s.\n",
				out.Snapshot.Name, out.Snapshot.Level, out.Snapshot.Archetype, playSlot)
			return out.Snapshot.ToPlayer(idgen.NewUUID("player").Generate()), out.Snapshot.Seed, nil
		case errors.IsNotFound(err):
			fmt.Printf("No save in slot %s, starting fresh.\n", playSlot)
		default:
			return nil, 0, err
		}
	}

	roller := dice.NewToolkit()
	abilities := make(entities.Abilities, 6)
	for _, ability := range entities.AllAbilities() {
		abilities[ability] = roller.Roll(3, 6)
	}
	return entities.NewPlayer(idgen.NewUUID("player").Generate(), playName, archetype, abilities), playSeed, nil
}

func (s *session) loop(ctx context.Context, in *os.File) error {
	scanner := bufio.NewScanner(in)
	for s.engine.State() == engine.StatePlaying {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		verb, args := fields[0], fields[1:]

		switch verb {
		case "quit":
			return nil
		case "n":
			s.engine.MoveOrAttack(0, -1)
		case "s":
			s.engine.MoveOrAttack(0, 1)
		case "w":
			s.engine.MoveOrAttack(-1, 0)
		case "e":
			s.engine.MoveOrAttack(1, 0)
		case "i":
			s.engine.Interact()
		case "rest":
			s.engine.Rest()
		case "prepare":
			s.engine.PrepareSpell(strings.Join(args, " "))
		case "cast":
			s.engine.StartTargeting(strings.Join(args, " "))
		case "cursor":
			dx, dy, err := parsePair(args)
			if err != nil {
				fmt.Println(err)
				continue
			}
			s.engine.MoveCursor(dx, dy)
			c := s.engine.TargetCursor()
			fmt.Printf("cursor at (%d, %d)\n", c.X, c.Y)
		case "confirm":
			s.engine.ConfirmTarget()
		case "cancel":
			s.engine.CancelTargeting()
		case "equip":
			if idx, err := parseIndex(args); err == nil {
				s.engine.EquipItem(idx)
			}
		case "use":
			if idx, err := parseIndex(args); err == nil {
				s.engine.UseItem(idx)
			}
		case "drop":
			if idx, err := parseIndex(args); err == nil {
				s.engine.DropItem(idx)
			}
		case "look":
			s.printViewport()
		case "status":
			s.printStatus()
		case "save":
			s.save(ctx)
		default:
			fmt.Printf("unknown command %q\n", verb)
		}

		s.flushMessages()
	}
	if s.engine.State() == engine.StateGameOver {
		fmt.Println("GAME OVER")
	}
	return scanner.Err()
}

func (s *session) save(ctx context.Context) {
	if s.repo == nil {
		fmt.Println("saving disabled: no --redis endpoint")
		return
	}
	snapshot := saves.FromPlayer(s.engine.Player(), s.seed)
	if _, err := s.repo.Save(ctx, saves.SaveInput{Slot: playSlot, Snapshot: snapshot}); err != nil {
		fmt.Printf("save failed: %v\n", err)
		return
	}
	fmt.Printf("Saved to slot %s.\n", playSlot)
}

// flushMessages prints engine messages added since the last flush, allowing
// for entries trimmed out of the retained window.
func (s *session) flushMessages() {
	msgs := s.engine.Messages()
	total := s.engine.MessageCount()
	first := total - len(msgs) // index of msgs[0] in the full history
	start := s.seen - first
	if start < 0 {
		start = 0
	}
	for _, msg := range msgs[start:] {
		fmt.Println(msg)
	}
	s.seen = total
}

const viewportRadius = 12

// printViewport renders the glyph grid around the player, with entities
// drawn over terrain.
func (s *session) printViewport() {
	m := s.engine.Map()
	p := s.engine.Player()

	glyphAt := func(x, y int) rune {
		if x == p.X && y == p.Y {
			return '@'
		}
		for _, mo := range s.engine.Monsters() {
			if mo.Alive() && mo.X == x && mo.Y == y {
				return mo.Glyph
			}
		}
		for _, n := range s.engine.NPCs() {
			if n.X == x && n.Y == y {
				return n.Glyph
			}
		}
		return m.At(x, y).Glyph
	}

	for y := p.Y - viewportRadius; y <= p.Y+viewportRadius; y++ {
		var row strings.Builder
		for x := p.X - viewportRadius; x <= p.X+viewportRadius; x++ {
			if !m.InBounds(x, y) {
				row.WriteRune(' ')
				continue
			}
			row.WriteRune(glyphAt(x, y))
		}
		fmt.Println(row.String())
	}
}

func (s *session) printStatus() {
	p := s.engine.Player()
	fmt.Printf("%s the %s  lvl %d  HP %d/%d  AC %d  XP %d  gold %d  at (%d, %d)\n",
		p.Name, p.Archetype, p.Level, p.HP, p.MaxHP, p.AC(), p.XP, p.Gold, p.X, p.Y)
	for i, it := range p.Inventory {
		fmt.Printf("  [%d] %s\n", i, it.Name)
	}
	if p.Archetype == rules.ArchetypeMage {
		book := s.engine.Spellbook()
		for level := 1; level <= 3; level++ {
			if book.MaxSlots(level) == 0 {
				continue
			}
			fmt.Printf("  L%d slots %d/%d prepared %v\n",
				level, book.SlotsRemaining(level), book.MaxSlots(level), book.Prepared(level))
		}
	}
}

func parsePair(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected: cursor <dx> <dy>")
	}
	dx, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, err
	}
	dy, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, err
	}
	return dx, dy, nil
}

func parseIndex(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected one index")
	}
	return strconv.Atoi(args[0])
}
