package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

type FoodManager struct {
	foodList []*entity.Food
}

// NewFoodManager places count food items at random cells.
func NewFoodManager(grid types.Grid, rng types.RandSource, count int) *FoodManager {
	fm := &FoodManager{
		foodList: make([]*entity.Food, 0, count),
	}
	for i := 0; i < count; i++ {
		fm.foodList = append(fm.foodList, entity.NewFood(grid, rng))
	}
	return fm
}

// Update feeds the snake from every food item its body covers and moves
// those items elsewhere. It returns how many were eaten.
func (fm *FoodManager) Update(snake *entity.Snake) int {
	eaten := 0
	for _, food := range fm.foodList {
		if snake.CheckCollision(food.Position()) {
			snake.Grow()
			food.Generate()
			eaten++
		}
	}
	return eaten
}

func (fm *FoodManager) GetFoodList() []*entity.Food {
	return fm.foodList
}
