package likes

import "context"

type likeService struct {
	likeRepo LikeRepository
}

// NewLikeService creates a new like service instance.
func NewLikeService(likeRepo LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

func (s *likeService) Toggle(ctx context.Context, userID string, kind TargetKind, targetID string) (*ToggleResult, error) {
	if kind != TargetVideo && kind != TargetComment {
		return nil, ErrInvalidTarget
	}
	if targetID == "" {
		return nil, ErrInvalidTarget
	}

	exists, err := s.likeRepo.Exists(ctx, userID, kind, targetID)
	if err != nil {
		return nil, err
	}

	liked := !exists
	if exists {
		if _, err := s.likeRepo.Remove(ctx, userID, kind, targetID); err != nil {
			return nil, err
		}
	} else {
		created, err := s.likeRepo.Insert(ctx, userID, kind, targetID)
		if err != nil {
			return nil, err
		}
		// A concurrent toggle can win the insert; report the stored state.
		if !created {
			liked = true
		}
	}

	count, err := s.likeRepo.Count(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}

	return &ToggleResult{Liked: liked, LikeCount: count}, nil
}
