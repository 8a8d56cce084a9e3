package handler

import (
	"github.com/gofiber/fiber/v2"

	"recipeshare/internal/service"
)

func followPair(c *fiber.Ctx) (follower, following int64, ok bool) {
	follower, ok1 := paramID(c, "id")
	following, ok2 := paramID(c, "targetId")
	return follower, following, ok1 && ok2
}

// FollowUser makes :id follow :targetId. Repeating the call changes nothing.
//
//	@Summary	Follow a user
//	@Tags		follows
//	@Produce	json
//	@Param		id			path		int	true	"follower id"
//	@Param		targetId	path		int	true	"followed user id"
//	@Success	201			{object}	map[string]string
//	@Success	200			{object}	map[string]string
//	@Failure	400			{object}	errorPayload
//	@Failure	404			{object}	errorPayload
//	@Router		/user/{id}/follow/{targetId} [post]
func FollowUser(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		follower, following, ok := followPair(c)
		if !ok {
			return invalidID(c)
		}
		created, err := svc.Follow(c.UserContext(), follower, following)
		if err != nil {
			return writeServiceError(c, err)
		}
		if !created {
			return c.JSON(fiber.Map{"message": "Already following"})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Followed successfully"})
	}
}

// UnfollowUser removes any follow edge from :id to :targetId.
//
//	@Summary	Unfollow a user
//	@Tags		follows
//	@Produce	json
//	@Param		id			path		int	true	"follower id"
//	@Param		targetId	path		int	true	"followed user id"
//	@Success	200			{object}	map[string]string
//	@Failure	404			{object}	errorPayload
//	@Router		/user/{id}/unfollow/{targetId} [delete]
func UnfollowUser(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		follower, following, ok := followPair(c)
		if !ok {
			return invalidID(c)
		}
		removed, err := svc.Unfollow(c.UserContext(), follower, following)
		if err != nil {
			return writeServiceError(c, err)
		}
		if removed == 0 {
			return c.JSON(fiber.Map{"message": "Not following"})
		}
		return c.JSON(fiber.Map{"message": "Unfollowed successfully"})
	}
}

// IsFollowing reports whether :id follows :targetId.
//
//	@Summary	Check a follow edge
//	@Tags		follows
//	@Produce	json
//	@Param		id			path		int	true	"follower id"
//	@Param		targetId	path		int	true	"followed user id"
//	@Success	200			{object}	map[string]bool
//	@Router		/user/{id}/is-following/{targetId} [get]
func IsFollowing(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		follower, following, ok := followPair(c)
		if !ok {
			return invalidID(c)
		}
		yes, err := svc.IsFollowing(c.UserContext(), follower, following)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"isFollowing": yes})
	}
}

// ListFollowers returns the users following :id.
//
//	@Summary	List followers
//	@Tags		follows
//	@Produce	json
//	@Param		id	path	int	true	"user id"
//	@Success	200	{array}	model.User
//	@Router		/user/{id}/followers [get]
func ListFollowers(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		users, err := svc.Followers(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(users)
	}
}

// ListFollowing returns the users :id follows.
//
//	@Summary	List followed users
//	@Tags		follows
//	@Produce	json
//	@Param		id	path	int	true	"user id"
//	@Success	200	{array}	model.User
//	@Router		/user/{id}/following [get]
func ListFollowing(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return invalidID(c)
		}
		users, err := svc.Following(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(users)
	}
}
