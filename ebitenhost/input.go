package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/signin"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// pointerTracker maps Ebitengine mouse and touch state onto scene pointer
// IDs.
type pointerTracker struct {
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	touchLast    [maxPointers][2]float64
	prevTouchIDs []ebiten.TouchID
}

// poll feeds this frame's pointer samples to the scene.
func (p *pointerTracker) poll(scene *signin.Scene) {
	mx, my := ebiten.CursorPosition()
	scene.ProcessPointer(0, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	touchIDs := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		p.touchLast[slot] = [2]float64{float64(tx), float64(ty)}
		scene.ProcessPointer(slot, float64(tx), float64(ty), true)
	}

	// Lifted touches release at their last known position.
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && !activeSlots[i] {
			scene.ProcessPointer(i, p.touchLast[i][0], p.touchLast[i][1], false)
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (p *pointerTracker) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}
