package game

// Update advances every live particle by dt seconds in one forward pass.
// The caller clamps dt against lag spikes upstream; dt < 0 is ignored.
//
// Dead slots are compacted by swap-remove: the last live particle is
// copied into the freed slot and the same index is examined again on the
// next iteration, since it now holds a particle that has not been
// processed this frame. This keeps removal O(1) regardless of how many
// particles die at once; a shifting compaction would go quadratic on
// frames where a whole burst expires together.
func (pp *ParticlePool) Update(dt float64) {
	if dt < 0 {
		return
	}
	g := pp.cfg.Gravity * dt
	ds := pp.cfg.SpinRate * dt

	i := 0
	for i < pp.n {
		pp.life[i] -= dt
		if pp.life[i] <= 0 {
			last := pp.n - 1
			if i != last {
				pp.copySlot(last, i)
			}
			pp.n = last
			continue
		}

		pp.posX[i] += pp.velX[i] * dt
		pp.posY[i] += pp.velY[i] * dt
		pp.posZ[i] += pp.velZ[i] * dt
		pp.velY[i] -= g
		pp.spin[i] += ds
		i++
	}
}

// copySlot overwrites dst with every attribute of src.
func (pp *ParticlePool) copySlot(src, dst int) {
	pp.posX[dst] = pp.posX[src]
	pp.posY[dst] = pp.posY[src]
	pp.posZ[dst] = pp.posZ[src]
	pp.velX[dst] = pp.velX[src]
	pp.velY[dst] = pp.velY[src]
	pp.velZ[dst] = pp.velZ[src]
	pp.life[dst] = pp.life[src]
	pp.maxLife[dst] = pp.maxLife[src]
	pp.size[dst] = pp.size[src]
	pp.spin[dst] = pp.spin[src]
	pp.colR[dst] = pp.colR[src]
	pp.colG[dst] = pp.colG[src]
	pp.colB[dst] = pp.colB[src]
}
