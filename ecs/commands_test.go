package ecs

import "testing"

func TestSpawnIsDeferredUntilApply(t *testing.T) {
	w := NewWorld()
	var queue CommandQueue
	c := NewCommands(&queue, w)

	e := c.Spawn().Insert(testComp{val: 9})
	if w.Alive(e.ID()) {
		t.Fatal("entity should not be alive before Apply")
	}
	if Has[testComp](w, e.ID()) {
		t.Fatal("component should not be visible before Apply")
	}

	queue.Apply(w)

	if !w.Alive(e.ID()) {
		t.Fatal("entity should be alive after Apply")
	}
	tc, ok := Get[testComp](w, e.ID())
	if !ok || tc.val != 9 {
		t.Fatalf("expected testComp{9} after Apply, got %v ok=%v", tc, ok)
	}
}

func TestInsertIsOneSchedulingUnit(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	w.Execute(func(c *Commands) {
		c.Entity(id).Insert(testComp{val: 1}, otherComp{})
	})

	// Both landed at the same flush.
	if !Has[testComp](w, id) || !Has[otherComp](w, id) {
		t.Fatal("batched insert must land every component together")
	}
}

func TestQueueAppliesInFIFOOrder(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	w.Execute(func(c *Commands) {
		c.Entity(id).Insert(testComp{val: 1})
		c.Entity(id).Insert(testComp{val: 2})
	})

	tc, _ := Get[testComp](w, id)
	if tc.val != 2 {
		t.Fatalf("later-queued value must win, got val=%d", tc.val)
	}
}

func TestCommandQueuedDuringApplyRunsInSameFlush(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	var queue CommandQueue
	c := NewCommands(&queue, w)
	c.Queue(func(inner *World) {
		c.Entity(id).Insert(testComp{val: 5})
	})
	queue.Apply(w)

	if tc, ok := Get[testComp](w, id); !ok || tc.val != 5 {
		t.Fatalf("follow-up command did not run, got %v ok=%v", tc, ok)
	}
	if queue.Len() != 0 {
		t.Fatalf("queue should be empty after Apply, has %d", queue.Len())
	}
}

func TestDespawn(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 1})

	w.Execute(func(c *Commands) {
		c.Entity(id).Despawn()
	})

	if w.Alive(id) {
		t.Fatal("entity should be dead after Despawn applied")
	}
	if Has[testComp](w, id) {
		t.Fatal("components should be gone after Despawn applied")
	}
}

func TestRemoveCommand(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 1})

	w.Execute(func(c *Commands) {
		c.Entity(id).Remove(TypeFor[testComp]())
	})

	if Has[testComp](w, id) {
		t.Fatal("component should be removed after Apply")
	}
}

func TestCommandsOnDeadEntityAreDropped(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	w.Execute(func(c *Commands) {
		c.Entity(id).Despawn()
		// Queued after the despawn in the same flush: must not land.
		c.Entity(id).Insert(testComp{val: 1})
	})

	if Has[testComp](w, id) {
		t.Fatal("insert targeting a despawned entity must be dropped")
	}
}

func TestDiscardedQueueNeverApplies(t *testing.T) {
	w := NewWorld()
	var queue CommandQueue
	c := NewCommands(&queue, w)
	e := c.Spawn().Insert(testComp{val: 1})

	// Queue dropped without Apply: the reserved entity never materializes.
	if w.Alive(e.ID()) || Has[testComp](w, e.ID()) {
		t.Fatal("discarded queue must leave the world untouched")
	}
}
