package systems

import (
	"fmt"

	"github.com/automoto/runslide/components"
	cfg "github.com/automoto/runslide/config"
	"github.com/automoto/runslide/fonts"
	"github.com/automoto/runslide/shared/gamemath"
	"github.com/automoto/runslide/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD renders the movement readout in the bottom-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	lines := hudLines(
		components.Body.Get(playerEntry),
		components.Motion.Get(playerEntry),
		components.Tuning.Get(playerEntry),
		components.Player.Get(playerEntry),
		components.PlayerInput.Get(playerEntry),
	)

	face := fonts.HUD.Get()
	y := screen.Bounds().Dy() - hudMargin - (len(lines)-1)*cfg.UI.HUDLineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, hudMargin, y, cfg.UI.HUDTextColor)
		y += cfg.UI.HUDLineHeight
	}

	help := "WASD move  Q/E turn  Space jump  C slide  R run  F1 debug  F5 save  F9 preset"
	text.Draw(screen, help, fonts.HUDSmall.Get(), hudMargin, hudMargin+cfg.UI.HUDLineHeight/2, cfg.UI.HUDTextColor)
}

func hudLines(body *motion.Body, state *motion.State, tuning *components.TuningData, player *components.PlayerData, input *components.PlayerInputData) []string {
	mode := "run"
	if state.Sliding {
		mode = "slide"
	}
	jump := state.Jump.String()
	if state.Jump == motion.JumpCooling {
		jump = fmt.Sprintf("%s %.2fs", jump, state.Cooldown)
	}
	return []string{
		fmt.Sprintf("preset   %s", tuning.Preset),
		fmt.Sprintf("mode     %s", mode),
		fmt.Sprintf("speed    %.2f / %.2f m/s", gamemath.HorizontalSpeed(body.Velocity), tuning.MovementSpeed),
		fmt.Sprintf("vertical %+.2f m/s", body.Velocity.Y()),
		fmt.Sprintf("jump     %s", jump),
		fmt.Sprintf("grounded %t", state.Grounded),
		fmt.Sprintf("force    %.2f N", player.LastForce.Len()),
		fmt.Sprintf("drag     %.2f", body.Drag),
		fmt.Sprintf("input    %s", input.InputMethod),
		fmt.Sprintf("respawns %d", player.Respawns),
	}
}
